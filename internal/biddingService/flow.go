package bidding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"midnight-auction/internal/auctionerrors"
	"midnight-auction/internal/hooks"
	"midnight-auction/internal/models"
	"midnight-auction/internal/notify"
	"midnight-auction/utils"
)

//go:generate mockgen -destination=mock_bid_placer.go -package=bidding midnight-auction/internal/biddingService BidPlacer

// BidPlacer submits a bid to the remote API
type BidPlacer interface {
	PlaceBid(ctx context.Context, listingID string, amount float64) (models.Envelope[models.Bid], error)
}

// State is the position of a BidFlow in its submission cycle
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateAccepted   State = "accepted"
	StateRejected   State = "rejected"
)

// RefetchFunc reloads the listing after an accepted bid
type RefetchFunc func(ctx context.Context)

type bidRequest struct {
	listingID string
	amount    float64
}

// BidFlow drives bid submission for one listing view.
// The server stays authoritative: an accepted bid only clears the input and triggers a refetch.
type BidFlow struct {
	mu       sync.Mutex
	placer   BidPlacer
	notifier notify.Notifier
	refetch  RefetchFunc
	now      func() time.Time

	state    State
	outcome  State
	input    string
	mutation *hooks.Mutation[bidRequest, models.Bid]
}

// FlowOption configures a BidFlow
type FlowOption func(*BidFlow)

// WithRefetch sets the callback run after an accepted bid
func WithRefetch(fn RefetchFunc) FlowOption {
	return func(f *BidFlow) { f.refetch = fn }
}

// WithClock overrides the clock used for the deadline check
func WithClock(now func() time.Time) FlowOption {
	return func(f *BidFlow) { f.now = now }
}

// NewBidFlow creates an idle BidFlow
func NewBidFlow(placer BidPlacer, notifier notify.Notifier, opts ...FlowOption) *BidFlow {
	f := &BidFlow{
		placer:   placer,
		notifier: notifier,
		now:      time.Now,
		state:    StateIdle,
		outcome:  StateIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.mutation = hooks.NewMutation(func(ctx context.Context, req bidRequest) (models.Bid, error) {
		env, err := f.placer.PlaceBid(ctx, req.listingID, req.amount)
		if err != nil {
			return models.Bid{}, fmt.Errorf("bidding: place bid on %s: %w", req.listingID, err)
		}
		return env.Data, nil
	}, notifier, hooks.WithOnSuccess[bidRequest](func(models.Bid) {
		f.mu.Lock()
		f.input = ""
		f.mu.Unlock()
	}))
	return f
}

// Submit validates raw against the listing and the caller's session, then places the bid.
// Local rejections are notified and returned without any network call.
func (f *BidFlow) Submit(ctx context.Context, listing models.Listing, session models.Session, raw string) (models.Bid, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return models.Bid{}, auctionerrors.ErrSubmissionInProgress
	}
	f.input = raw

	amount, err := Validate(listing, session, raw, f.now())
	if err != nil {
		f.outcome = StateRejected
		f.mu.Unlock()
		if f.notifier != nil {
			f.notifier.Error(auctionerrors.Message(err, auctionerrors.MsgUnexpectedMutation))
		}
		return models.Bid{}, err
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	bid, ok := f.mutation.Mutate(ctx, bidRequest{listingID: listing.ID, amount: amount})

	f.mu.Lock()
	f.state = StateIdle
	if !ok {
		f.outcome = StateRejected
		msg := f.mutation.Error()
		f.mu.Unlock()
		return models.Bid{}, fmt.Errorf("bidding: %w on %s: %s", auctionerrors.ErrBidRejected, listing.ID, msg)
	}
	f.outcome = StateAccepted
	refetch := f.refetch
	f.mu.Unlock()

	utils.Info("bid accepted", map[string]any{
		"listing_id": listing.ID,
		"amount":     amount,
	})
	if refetch != nil {
		refetch(ctx)
	}
	return bid, nil
}

// State returns the current position in the submission cycle
func (f *BidFlow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Outcome returns the result of the last finished submission, or idle before the first one
func (f *BidFlow) Outcome() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome
}

// Input returns the pending bid input; it is cleared after an accepted bid
func (f *BidFlow) Input() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Error returns the message of the last failed submission to the API
func (f *BidFlow) Error() string {
	return f.mutation.Error()
}
