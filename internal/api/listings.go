package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"midnight-auction/internal/models"
)

// SortKey is a field listings can be ordered by
type SortKey string

const (
	SortCreated SortKey = "created"
	SortTitle   SortKey = "title"
	SortEndsAt  SortKey = "endsAt"
	SortUpdated SortKey = "updated"
)

// Valid reports whether k is a sort key the remote API accepts
func (k SortKey) Valid() bool {
	switch k {
	case SortCreated, SortTitle, SortEndsAt, SortUpdated:
		return true
	}
	return false
}

// SortOrder is the direction of a listing sort
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// DefaultPageSize is the page size used when none is given
const DefaultPageSize = 12

// ListingsQuery holds the parameters of a paginated listings call
type ListingsQuery struct {
	Page       int
	Limit      int
	Sort       SortKey
	SortOrder  SortOrder
	ActiveOnly bool
}

func (q ListingsQuery) params() map[string]string {
	p := pageParams(q.Page, q.Limit)
	sort := q.Sort
	if !sort.Valid() {
		sort = SortCreated
	}
	order := q.SortOrder
	if order != OrderAsc {
		order = OrderDesc
	}
	p["sort"] = string(sort)
	p["sortOrder"] = string(order)
	if q.ActiveOnly {
		p["_active"] = "true"
	}
	return p
}

// GetListings returns one page of listings in the requested order
func (c *Client) GetListings(ctx context.Context, q ListingsQuery) (models.Envelope[[]models.Listing], error) {
	return call[[]models.Listing](ctx, c, http.MethodGet, "/auction/listings", q.params(), nil)
}

// GetAllListings returns one page of listings in the server's default order, ended ones included
func (c *Client) GetAllListings(ctx context.Context, page, limit int) (models.Envelope[[]models.Listing], error) {
	return call[[]models.Listing](ctx, c, http.MethodGet, "/auction/listings", pageParams(page, limit), nil)
}

// GetListing returns one listing, optionally with its seller and bids
func (c *Client) GetListing(ctx context.Context, id string, includeAll bool) (models.Envelope[models.Listing], error) {
	include := strconv.FormatBool(includeAll)
	return call[models.Listing](ctx, c, http.MethodGet, "/auction/listings/"+url.PathEscape(id),
		map[string]string{"_seller": include, "_bids": include}, nil)
}

// SearchListings returns listings matching a text query
func (c *Client) SearchListings(ctx context.Context, query string, page, limit int) (models.Envelope[[]models.Listing], error) {
	p := pageParams(page, limit)
	p["q"] = query
	return call[[]models.Listing](ctx, c, http.MethodGet, "/auction/listings/search", p, nil)
}

// CreateListing creates a listing owned by the token's user
func (c *Client) CreateListing(ctx context.Context, payload models.ListingPayload) (models.Envelope[models.Listing], error) {
	return call[models.Listing](ctx, c, http.MethodPost, "/auction/listings", nil, payload)
}

// UpdateListing updates a listing owned by the token's user
func (c *Client) UpdateListing(ctx context.Context, id string, payload models.ListingPayload) (models.Envelope[models.Listing], error) {
	return call[models.Listing](ctx, c, http.MethodPut, "/auction/listings/"+url.PathEscape(id), nil, payload)
}

// DeleteListing deletes a listing owned by the token's user
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	_, err := call[struct{}](ctx, c, http.MethodDelete, "/auction/listings/"+url.PathEscape(id), nil, nil)
	return err
}

type placeBidBody struct {
	Amount float64 `json:"amount"`
}

// PlaceBid bids amount credits on a listing. The server decides acceptance.
func (c *Client) PlaceBid(ctx context.Context, listingID string, amount float64) (models.Envelope[models.Bid], error) {
	return call[models.Bid](ctx, c, http.MethodPost, "/auction/listings/"+url.PathEscape(listingID)+"/bids", nil,
		placeBidBody{Amount: amount})
}
