package helpers

import (
	"encoding/json"
	"strings"

	bidding "midnight-auction/internal/biddingService"
	"midnight-auction/internal/models"
)

// RawAmount is the bid input as typed by the user. It accepts a JSON string or number
// and is parsed by the bid flow, not by the binder.
type RawAmount string

func (r *RawAmount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = RawAmount(s)
		return nil
	}
	*r = RawAmount(strings.TrimSpace(string(data)))
	return nil
}

// Request DTOs
type PlaceBidRequest struct {
	Amount RawAmount `json:"amount"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type UpdateProfileRequest struct {
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// View models
type HomeView struct {
	Title      string           `json:"title"`
	Sort       string           `json:"sort"`
	SortOrder  string           `json:"sort_order"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Listings   []models.Listing `json:"listings"`
	Empty      string           `json:"empty,omitempty"`
}

type ListingView struct {
	Listing     models.Listing      `json:"listing"`
	Bids        []models.Bid        `json:"bids"`
	CurrentBid  int                 `json:"current_bid"`
	TotalBids   int                 `json:"total_bids"`
	Eligibility bidding.Eligibility `json:"eligibility"`
	BidInput    string              `json:"bid_input,omitempty"`
	BidState    bidding.State       `json:"bid_state"`
	CanEdit     bool                `json:"can_edit"`
}

// BidPlacedView answers an accepted bid whose listing could not be reloaded
type BidPlacedView struct {
	Bid          models.Bid    `json:"bid"`
	BidState     bidding.State `json:"bid_state"`
	RefetchError string        `json:"refetch_error"`
}

type ListingResult struct {
	Listing  models.Listing `json:"listing"`
	Redirect string         `json:"redirect"`
}

type SearchView struct {
	Query   string           `json:"query"`
	Results []models.Listing `json:"results"`
	Empty   string           `json:"empty,omitempty"`
}

type SessionView struct {
	Authenticated bool                `json:"authenticated"`
	IsLoading     bool                `json:"is_loading"`
	IsNewLogin    bool                `json:"is_new_login"`
	Profile       *models.UserProfile `json:"profile,omitempty"`
}

type ProfileView struct {
	Stats     models.FullProfileStats `json:"stats"`
	Breakdown []models.StatsShare     `json:"breakdown"`
}

type TabView[T any] struct {
	ShowEnded bool   `json:"show_ended"`
	Items     []T    `json:"items"`
	Empty     string `json:"empty,omitempty"`
}
