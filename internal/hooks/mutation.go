package hooks

import (
	"context"
	"sync"

	"midnight-auction/internal/auctionerrors"
	"midnight-auction/internal/notify"
	"midnight-auction/utils"
)

// MutationFunc performs one write
type MutationFunc[T, U any] func(ctx context.Context, input T) (U, error)

// MutationOption configures a Mutation
type MutationOption[T, U any] func(*Mutation[T, U])

// WithOnSuccess sets the callback invoked with the result of a successful call
func WithOnSuccess[T, U any](fn func(U)) MutationOption[T, U] {
	return func(m *Mutation[T, U]) { m.onSuccess = fn }
}

// WithOnError sets the callback invoked with the display message of a failed call.
// When set, the callback is responsible for notifying the user.
func WithOnError[T, U any](fn func(string)) MutationOption[T, U] {
	return func(m *Mutation[T, U]) { m.onError = fn }
}

// Mutation wraps a write with loading and error state. Calls are not serialized and never retried.
type Mutation[T, U any] struct {
	mu        sync.Mutex
	fn        MutationFunc[T, U]
	notifier  notify.Notifier
	onSuccess func(U)
	onError   func(string)
	inflight  int
	err       string
}

// NewMutation creates a Mutation around fn
func NewMutation[T, U any](fn MutationFunc[T, U], notifier notify.Notifier, opts ...MutationOption[T, U]) *Mutation[T, U] {
	m := &Mutation[T, U]{fn: fn, notifier: notifier}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mutate runs the write. It reports whether the call succeeded; failures are recorded
// in the Mutation's state and never returned as errors.
func (m *Mutation[T, U]) Mutate(ctx context.Context, input T) (U, bool) {
	m.mu.Lock()
	m.inflight++
	m.err = ""
	m.mu.Unlock()

	result, err := m.fn(ctx, input)

	var msg string
	m.mu.Lock()
	m.inflight--
	if err != nil {
		msg = auctionerrors.Message(err, auctionerrors.MsgUnexpectedMutation)
		m.err = msg
	}
	onSuccess, onError := m.onSuccess, m.onError
	m.mu.Unlock()

	if err != nil {
		utils.Warn("mutation failed", map[string]any{
			"kind":  auctionerrors.Classify(err).String(),
			"error": err.Error(),
		})
		if onError != nil {
			onError(msg)
		} else if m.notifier != nil {
			m.notifier.Error(msg)
		}
		var zero U
		return zero, false
	}

	if onSuccess != nil {
		onSuccess(result)
	}
	return result, true
}

// IsLoading reports whether any call is in flight
func (m *Mutation[T, U]) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inflight > 0
}

// Error returns the message of the last failed call, or ""
func (m *Mutation[T, U]) Error() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}
