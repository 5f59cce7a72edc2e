package bidding

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"midnight-auction/internal/auctionerrors"
	"midnight-auction/internal/models"
)

// User-facing rejection messages of the bid pre-filter
const (
	MsgNotAuthenticated     = "You must be logged in to place a bid."
	MsgAuctionClosed        = "This auction has ended."
	MsgOwnListing           = "You cannot bid on your own listing."
	MsgAlreadyHighestBidder = "You are already the highest bidder."
	MsgBidTooLow            = "Your bid must be higher than the current bid of %d credits."
	MsgInsufficientCredits  = "You don't have enough credits to place this bid."
)

// HighestBid returns the bid with the largest amount.
// On equal amounts the entry that comes first in server order wins.
func HighestBid(bids []models.Bid) (models.Bid, bool) {
	if len(bids) == 0 {
		return models.Bid{}, false
	}
	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > highest.Amount {
			highest = b
		}
	}
	return highest, true
}

// CurrentPrice is the highest bid amount, or 0 when the listing has no bids
func CurrentPrice(listing models.Listing) int {
	if highest, ok := HighestBid(listing.Bids); ok {
		return highest.Amount
	}
	return 0
}

// SortBidsDesc returns a copy of bids ordered by amount, highest first
func SortBidsDesc(bids []models.Bid) []models.Bid {
	sorted := make([]models.Bid, len(bids))
	copy(sorted, bids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	return sorted
}

// IsClosed reports whether the listing deadline has been reached at now
func IsClosed(listing models.Listing, now time.Time) bool {
	return !listing.EndsAt.After(now)
}

// Eligibility describes which bidding controls a viewer gets on a listing
type Eligibility struct {
	Authenticated   bool `json:"authenticated"`
	IsOwner         bool `json:"is_owner"`
	IsHighestBidder bool `json:"is_highest_bidder"`
	IsClosed        bool `json:"is_closed"`
	CanBid          bool `json:"can_bid"`
	ShowBidForm     bool `json:"show_bid_form"`
	MinBid          int  `json:"min_bid"`
}

// Evaluate computes the eligibility of profile on listing at now. A nil profile is an anonymous viewer.
func Evaluate(listing models.Listing, profile *models.UserProfile, now time.Time) Eligibility {
	e := Eligibility{
		Authenticated: profile != nil,
		IsClosed:      IsClosed(listing, now),
		MinBid:        CurrentPrice(listing),
	}
	if profile != nil {
		e.IsOwner = listing.Seller != nil && listing.Seller.Name == profile.Name
		if highest, ok := HighestBid(listing.Bids); ok {
			e.IsHighestBidder = highest.Bidder.Name == profile.Name
		}
	}
	e.CanBid = e.Authenticated && !e.IsOwner && !e.IsClosed
	e.ShowBidForm = e.CanBid && !e.IsHighestBidder
	return e
}

// Validate runs the local pre-filter on a candidate bid and returns the parsed amount.
// Checks short-circuit in order; a failure never reaches the network.
func Validate(listing models.Listing, session models.Session, raw string, now time.Time) (float64, error) {
	if !session.Authenticated() {
		return 0, auctionerrors.NewValidation(auctionerrors.ErrNotAuthenticated, MsgNotAuthenticated)
	}
	if IsClosed(listing, now) {
		return 0, auctionerrors.NewValidation(auctionerrors.ErrAuctionClosed, MsgAuctionClosed)
	}
	if listing.Seller != nil && listing.Seller.Name == session.Profile.Name {
		return 0, auctionerrors.NewValidation(auctionerrors.ErrOwnListing, MsgOwnListing)
	}

	highest, hasBids := HighestBid(listing.Bids)
	current := 0
	if hasBids {
		current = highest.Amount
	}
	if hasBids && highest.Bidder.Name == session.Profile.Name {
		return 0, auctionerrors.NewValidation(auctionerrors.ErrAlreadyHighestBidder, MsgAlreadyHighestBidder)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= float64(current) {
		return 0, auctionerrors.NewValidation(auctionerrors.ErrBidTooLow, MsgBidTooLow, current)
	}

	if amount > float64(session.Profile.Credits) {
		return 0, auctionerrors.NewValidation(auctionerrors.ErrInsufficientCredits, MsgInsufficientCredits)
	}

	return amount, nil
}
