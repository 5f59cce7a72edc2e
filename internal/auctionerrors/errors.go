package auctionerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Local validation errors, detected before any network call
var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAlreadyHighestBidder = errors.New("already the highest bidder")
	ErrBidTooLow            = errors.New("bid amount too low")
	ErrInsufficientCredits  = errors.New("insufficient credits")
	ErrAuctionClosed        = errors.New("auction has ended")
	ErrOwnListing           = errors.New("cannot bid on own listing")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrInvalidUsername      = errors.New("invalid username")
	ErrTitleRequired        = errors.New("title is required")
	ErrMediaRequired        = errors.New("first image url is required")
	ErrTooManyMedia         = errors.New("too many images")
	ErrInvalidDuration      = errors.New("invalid auction duration")
	ErrNotSeller            = errors.New("not the seller of this listing")
	ErrBidRejected          = errors.New("bid rejected")
)

// Display strings for errors without a usable message
const (
	MsgUnexpectedRequest  = "An unexpected network or system error occurred."
	MsgUnexpectedMutation = "An unexpected error occurred."
	MsgEmptyAPIError      = "An API error occurred."
)

// ErrorDetail is a single entry of a structured API error body
type ErrorDetail struct {
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// APIError is the structured error body returned by the remote API on a non-2xx response
type APIError struct {
	Errors     []ErrorDetail `json:"errors"`
	Status     string        `json:"status"`
	StatusCode int           `json:"statusCode"`
}

func (e *APIError) Error() string {
	if msg := e.FirstMessage(); msg != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Status)
}

// FirstMessage returns the message surfaced to the user, or "" when the body carried none
func (e *APIError) FirstMessage() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}

// TransportError wraps failures that produced no structured body:
// network errors, timeouts, unreadable or unexpected responses.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError is a local validation failure carrying the message shown to the user
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Kind }

// NewValidation builds a ValidationError of the given kind
func NewValidation(kind error, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Kind classifies an error according to the client's error taxonomy
type Kind int

const (
	KindUnknown Kind = iota
	KindAPI
	KindTransport
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindTransport:
		return "transport"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Classify returns the taxonomy kind of err
func Classify(err error) Kind {
	var apiErr *APIError
	var transportErr *TransportError
	var validationErr *ValidationError
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &apiErr):
		return KindAPI
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &transportErr):
		return KindTransport
	default:
		return KindUnknown
	}
}

// Message returns the display string for err. Structured API errors surface their first
// message verbatim, validation errors their own message, anything else the fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.FirstMessage(); strings.TrimSpace(msg) != "" {
			return msg
		}
		if fallback == MsgUnexpectedRequest {
			return MsgEmptyAPIError
		}
		return fallback
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return fallback
}
