package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"midnight-auction/internal/models"

	"golang.org/x/sync/errgroup"
)

func profilePath(name string) string {
	return "/auction/profiles/" + url.PathEscape(name)
}

// GetProfile returns a profile, optionally with its listings and wins
func (c *Client) GetProfile(ctx context.Context, name string, includeAll bool) (models.Envelope[models.UserProfile], error) {
	include := strconv.FormatBool(includeAll)
	return call[models.UserProfile](ctx, c, http.MethodGet, profilePath(name),
		map[string]string{"_listings": include, "_wins": include}, nil)
}

// UpdateProfile updates the bio and avatar of the token's user
func (c *Client) UpdateProfile(ctx context.Context, name string, update models.ProfileUpdate) (models.Envelope[models.UserProfile], error) {
	return call[models.UserProfile](ctx, c, http.MethodPut, profilePath(name), nil, update)
}

// GetProfileListings returns the listings created by a profile
func (c *Client) GetProfileListings(ctx context.Context, name string) (models.Envelope[[]models.Listing], error) {
	return call[[]models.Listing](ctx, c, http.MethodGet, profilePath(name)+"/listings", nil, nil)
}

// GetProfileBids returns the bids made by a profile with their listings and sellers
func (c *Client) GetProfileBids(ctx context.Context, name string) (models.Envelope[[]models.Bid], error) {
	return call[[]models.Bid](ctx, c, http.MethodGet, profilePath(name)+"/bids",
		map[string]string{"_listings": "true", "_seller": "true"}, nil)
}

// GetProfileWins returns the listings a profile has won
func (c *Client) GetProfileWins(ctx context.Context, name string) (models.Envelope[[]models.Listing], error) {
	return call[[]models.Listing](ctx, c, http.MethodGet, profilePath(name)+"/wins",
		map[string]string{"_listings": "true"}, nil)
}

// SearchProfiles returns profiles matching a text query
func (c *Client) SearchProfiles(ctx context.Context, query string, page, limit int) (models.Envelope[[]models.UserProfile], error) {
	p := pageParams(page, limit)
	p["q"] = query
	return call[[]models.UserProfile](ctx, c, http.MethodGet, "/auction/profiles/search", p, nil)
}

// FullProfileStats fetches a profile and its bids in parallel and combines their counters.
// The first failure cancels the other call and is returned unchanged.
func (c *Client) FullProfileStats(ctx context.Context, name string) (models.Envelope[models.FullProfileStats], error) {
	var profile models.Envelope[models.UserProfile]
	var bids models.Envelope[[]models.Bid]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = c.GetProfile(gctx, name, true)
		return err
	})
	g.Go(func() error {
		var err error
		bids, err = c.GetProfileBids(gctx, name)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Envelope[models.FullProfileStats]{}, fmt.Errorf("api: full profile stats for %s: %w", name, err)
	}

	return models.Envelope[models.FullProfileStats]{Data: combineStats(profile.Data, bids)}, nil
}

func combineStats(profile models.UserProfile, bids models.Envelope[[]models.Bid]) models.FullProfileStats {
	stats := models.FullProfileStats{UserProfile: profile}
	if profile.Count != nil {
		stats.ListingsCount = profile.Count.Listings
		stats.WinsCount = profile.Count.Wins
	}
	if bids.Meta != nil {
		stats.BidsCount = bids.Meta.TotalCount
	}
	return stats
}
