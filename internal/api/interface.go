package api

import (
	"context"

	"midnight-auction/internal/models"
)

//go:generate mockgen -destination=mock/mock_api.go -package=mock midnight-auction/internal/api AuctionAPI

// AuctionAPI is the set of remote operations the views depend on
type AuctionAPI interface {
	Register(ctx context.Context, creds models.RegisterCredentials) (models.Envelope[models.AuthResult], error)
	Login(ctx context.Context, creds models.LoginCredentials) (models.Envelope[models.AuthResult], error)

	GetListings(ctx context.Context, q ListingsQuery) (models.Envelope[[]models.Listing], error)
	GetAllListings(ctx context.Context, page, limit int) (models.Envelope[[]models.Listing], error)
	GetListing(ctx context.Context, id string, includeAll bool) (models.Envelope[models.Listing], error)
	SearchListings(ctx context.Context, query string, page, limit int) (models.Envelope[[]models.Listing], error)
	CreateListing(ctx context.Context, payload models.ListingPayload) (models.Envelope[models.Listing], error)
	UpdateListing(ctx context.Context, id string, payload models.ListingPayload) (models.Envelope[models.Listing], error)
	DeleteListing(ctx context.Context, id string) error
	PlaceBid(ctx context.Context, listingID string, amount float64) (models.Envelope[models.Bid], error)

	GetProfile(ctx context.Context, name string, includeAll bool) (models.Envelope[models.UserProfile], error)
	UpdateProfile(ctx context.Context, name string, update models.ProfileUpdate) (models.Envelope[models.UserProfile], error)
	GetProfileListings(ctx context.Context, name string) (models.Envelope[[]models.Listing], error)
	GetProfileBids(ctx context.Context, name string) (models.Envelope[[]models.Bid], error)
	GetProfileWins(ctx context.Context, name string) (models.Envelope[[]models.Listing], error)
	SearchProfiles(ctx context.Context, query string, page, limit int) (models.Envelope[[]models.UserProfile], error)
	FullProfileStats(ctx context.Context, name string) (models.Envelope[models.FullProfileStats], error)
}

// Factory builds an AuctionAPI bound to a bearer token ("" for anonymous calls)
type Factory func(token string) AuctionAPI

var _ AuctionAPI = (*Client)(nil)
