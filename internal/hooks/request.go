package hooks

import (
	"context"
	"sync"

	"midnight-auction/internal/auctionerrors"
	"midnight-auction/internal/models"
	"midnight-auction/internal/notify"
	"midnight-auction/utils"
)

// Producer performs one asynchronous read and returns its envelope
type Producer[T any] func(ctx context.Context) (models.Envelope[T], error)

// RequestState is the view-facing state of a Request
type RequestState[T any] struct {
	Data      T            `json:"data"`
	HasData   bool         `json:"has_data"`
	Meta      *models.Meta `json:"meta,omitempty"`
	IsLoading bool         `json:"is_loading"`
	Error     string       `json:"error,omitempty"`
	// Err is the cause of the last failure, for callers that map it to a status
	Err error `json:"-"`
}

// Request wraps a read with loading, error and data state.
//
// Every call to Fetch takes a sequence number; a result is applied only if no newer
// call was issued meanwhile, so an older response can never overwrite a newer one.
// After Close no result is applied at all.
type Request[T any] struct {
	mu       sync.Mutex
	producer Producer[T]
	notifier notify.Notifier
	seq      uint64
	closed   bool
	state    RequestState[T]
}

// NewRequest creates a Request in the loading state without issuing a call
func NewRequest[T any](producer Producer[T], notifier notify.Notifier) *Request[T] {
	return &Request[T]{
		producer: producer,
		notifier: notifier,
		state:    RequestState[T]{IsLoading: true},
	}
}

// UseRequest creates a Request and performs the initial fetch
func UseRequest[T any](ctx context.Context, producer Producer[T], notifier notify.Notifier) *Request[T] {
	r := NewRequest(producer, notifier)
	r.Fetch(ctx)
	return r
}

// Fetch invokes the producer and applies its result. It returns the state after the call.
func (r *Request[T]) Fetch(ctx context.Context) RequestState[T] {
	r.mu.Lock()
	if r.closed {
		st := r.state
		r.mu.Unlock()
		return st
	}
	r.seq++
	id := r.seq
	producer := r.producer
	r.state.IsLoading = true
	r.mu.Unlock()

	env, err := producer(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || id != r.seq {
		utils.Debug("discarding superseded response", map[string]any{"seq": id, "latest": r.seq})
		return r.state
	}

	r.state.IsLoading = false
	if err != nil {
		msg := auctionerrors.Message(err, auctionerrors.MsgUnexpectedRequest)
		r.state.Error = msg
		r.state.Err = err
		if r.notifier != nil {
			r.notifier.Error(msg)
		}
		fields := map[string]any{"kind": auctionerrors.Classify(err).String(), "error": err.Error()}
		if auctionerrors.Classify(err) == auctionerrors.KindAPI {
			utils.Warn("request failed", fields)
		} else {
			utils.Error("request failed", fields)
		}
		return r.state
	}

	r.state.Data = env.Data
	r.state.HasData = true
	r.state.Meta = env.Meta
	r.state.Error = ""
	r.state.Err = nil
	return r.state
}

// Refetch re-invokes the current producer
func (r *Request[T]) Refetch(ctx context.Context) RequestState[T] {
	return r.Fetch(ctx)
}

// SetProducer replaces the producer and fetches with it
func (r *Request[T]) SetProducer(ctx context.Context, producer Producer[T]) RequestState[T] {
	r.mu.Lock()
	r.producer = producer
	r.mu.Unlock()
	return r.Fetch(ctx)
}

// State returns the current state
func (r *Request[T]) State() RequestState[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Close stops the Request from applying any further result
func (r *Request[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}
