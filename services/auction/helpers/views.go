package helpers

import (
	"strings"
	"time"

	"midnight-auction/internal/models"

	"github.com/sahilm/fuzzy"
)

// ActiveListings keeps the listings whose deadline is still ahead of now
func ActiveListings(listings []models.Listing, now time.Time) []models.Listing {
	active := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.EndsAt.After(now) {
			active = append(active, l)
		}
	}
	return active
}

// HighestBidPerListing keeps the caller's highest bid on each listing, in order of first appearance.
// Bids without an embedded listing are skipped.
func HighestBidPerListing(bids []models.Bid) []models.Bid {
	index := make(map[string]int)
	out := make([]models.Bid, 0, len(bids))
	for _, b := range bids {
		if b.Listing == nil {
			continue
		}
		i, seen := index[b.Listing.ID]
		if !seen {
			index[b.Listing.ID] = len(out)
			out = append(out, b)
			continue
		}
		if b.Amount > out[i].Amount {
			out[i] = b
		}
	}
	return out
}

// ActiveBids keeps the bids whose listing is still open at now
func ActiveBids(bids []models.Bid, now time.Time) []models.Bid {
	active := make([]models.Bid, 0, len(bids))
	for _, b := range bids {
		if b.Listing != nil && b.Listing.EndsAt.After(now) {
			active = append(active, b)
		}
	}
	return active
}

// listingTitles implements fuzzy.Source over listing titles
type listingTitles []models.Listing

func (l listingTitles) Len() int { return len(l) }

func (l listingTitles) String(i int) string { return strings.ToLower(l[i].Title) }

// RankByTitle orders listings by how well their title matches query. Listings the remote
// search returned for other reasons (description, tags) keep their order after the matches.
func RankByTitle(query string, listings []models.Listing) []models.Listing {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(listings) < 2 {
		return listings
	}

	matches := fuzzy.FindFrom(query, listingTitles(listings))
	ranked := make([]models.Listing, 0, len(listings))
	matched := make(map[int]bool, len(matches))
	for _, m := range matches {
		ranked = append(ranked, listings[m.Index])
		matched[m.Index] = true
	}
	for i, l := range listings {
		if !matched[i] {
			ranked = append(ranked, l)
		}
	}
	return ranked
}
