package handler

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"midnight-auction/internal/api"
	bidding "midnight-auction/internal/biddingService"
	"midnight-auction/internal/hooks"
	"midnight-auction/internal/models"
	"midnight-auction/internal/notify"
	"midnight-auction/internal/session"
	"midnight-auction/services/auction/helpers"
	"midnight-auction/utils"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
)

// SessionStore is the session state the views read and change
type SessionStore interface {
	Snapshot() models.Session
	Profile() *models.UserProfile
	Token() string
	IsLoading() bool
	IsNewLogin() bool
	AcknowledgeNewLogin()
	Login(token string, profile models.UserProfile) error
	Logout() error
	UpdateProfile(profile models.UserProfile) error
}

// StatsProvider serves memoized profile stats
type StatsProvider interface {
	Get(ctx context.Context, name string, fetcher api.StatsFetcher) (models.Envelope[models.FullProfileStats], error)
	Invalidate(name string)
}

// NotificationFeed collects notifications until the client drains them
type NotificationFeed interface {
	notify.Notifier
	Drain() []notify.Notification
}

// openListingViews bounds how many listing views keep their state between requests
const openListingViews = 64

// AuctionHandler serves the views of the auction client
type AuctionHandler struct {
	session SessionStore
	apiFor  api.Factory
	stats   StatsProvider
	notices NotificationFeed
	now     func() time.Time

	mu    sync.Mutex
	home  homeState
	views *lru.Cache
}

// Option configures an AuctionHandler
type Option func(*AuctionHandler)

// WithClock overrides the clock used for deadline checks
func WithClock(now func() time.Time) Option {
	return func(h *AuctionHandler) { h.now = now }
}

func NewAuctionHandler(store SessionStore, apiFor api.Factory, stats StatsProvider, notices NotificationFeed, opts ...Option) *AuctionHandler {
	h := &AuctionHandler{
		session: store,
		apiFor:  apiFor,
		stats:   stats,
		notices: notices,
		now:     time.Now,
		home:    newHomeState(),
	}
	for _, opt := range opts {
		opt(h)
	}
	// only fails for a non-positive size
	h.views, _ = lru.NewWithEvict(openListingViews, func(_, value interface{}) {
		value.(*listingView).req.Close()
	})
	return h
}

// client returns an API client bound to the current session token
func (h *AuctionHandler) client() api.AuctionAPI {
	return h.apiFor(h.session.Token())
}

// listingView is the state kept for one open listing page
type listingView struct {
	req  *hooks.Request[models.Listing]
	flow *bidding.BidFlow
}

type placerFunc func(ctx context.Context, listingID string, amount float64) (models.Envelope[models.Bid], error)

func (f placerFunc) PlaceBid(ctx context.Context, listingID string, amount float64) (models.Envelope[models.Bid], error) {
	return f(ctx, listingID, amount)
}

// viewFor returns the open view of a listing, creating it on first use
func (h *AuctionHandler) viewFor(id string) *listingView {
	h.mu.Lock()
	defer h.mu.Unlock()

	if v, ok := h.views.Get(id); ok {
		return v.(*listingView)
	}

	v := &listingView{}
	v.req = hooks.NewRequest(func(ctx context.Context) (models.Envelope[models.Listing], error) {
		return h.client().GetListing(ctx, id, true)
	}, h.notices)
	v.flow = bidding.NewBidFlow(
		placerFunc(func(ctx context.Context, listingID string, amount float64) (models.Envelope[models.Bid], error) {
			return h.client().PlaceBid(ctx, listingID, amount)
		}),
		h.notices,
		bidding.WithClock(h.now),
		bidding.WithRefetch(func(ctx context.Context) { v.req.Refetch(ctx) }),
	)
	h.views.Add(id, v)
	return v
}

// dropView forgets the open view of a listing
func (h *AuctionHandler) dropView(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.views.Remove(id)
}

// requireSession answers 401 with a redirect to the login page when nobody is logged in
func (h *AuctionHandler) requireSession(c *gin.Context) (models.Session, bool) {
	snap := h.session.Snapshot()
	if !snap.Authenticated() {
		utils.JSONRedirect(c, http.StatusUnauthorized, "you need to be logged in", session.LoginPath)
		return models.Session{}, false
	}
	return snap, true
}

// fail writes the mapped error response and logs it
func fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
	} else {
		utils.Warn(handlerName+": request failed", fields)
	}
}

// load runs a one-shot read through a Request hook
func load[T any](ctx context.Context, notices notify.Notifier, producer hooks.Producer[T]) hooks.RequestState[T] {
	req := hooks.NewRequest(producer, notices)
	defer req.Close()
	return req.Fetch(ctx)
}

// mutate runs a one-shot write through a Mutation hook and returns the cause of a failure
func mutate[T, U any](ctx context.Context, notices notify.Notifier, fn hooks.MutationFunc[T, U], input T, opts ...hooks.MutationOption[T, U]) (U, error) {
	var cause error
	m := hooks.NewMutation(func(ctx context.Context, in T) (U, error) {
		out, err := fn(ctx, in)
		cause = err
		return out, err
	}, notices, opts...)

	out, ok := m.Mutate(ctx, input)
	if !ok {
		return out, cause
	}
	return out, nil
}

// NotificationsHandler handles GET /notifications
func (h *AuctionHandler) NotificationsHandler(c *gin.Context) {
	pending := h.notices.Drain()
	utils.JSONResponse(c, http.StatusOK, pending, "notifications retrieved successfully")
}
