package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"midnight-auction/internal/api"
	"midnight-auction/internal/auctionerrors"
	"midnight-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain and remote errors to an HTTP status code and the message shown to the user
func MapErrorToHTTP(err error) (int, string) {
	var apiErr *auctionerrors.APIError
	var transportErr *auctionerrors.TransportError

	switch {
	case errors.Is(err, auctionerrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, auctionerrors.Message(err, "not authenticated")
	case errors.Is(err, auctionerrors.ErrNotSeller), errors.Is(err, auctionerrors.ErrOwnListing):
		return http.StatusForbidden, auctionerrors.Message(err, "not allowed")
	case errors.Is(err, auctionerrors.ErrSubmissionInProgress):
		return http.StatusConflict, "a bid is already being submitted"
	case errors.Is(err, auctionerrors.ErrAlreadyHighestBidder),
		errors.Is(err, auctionerrors.ErrBidTooLow),
		errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, auctionerrors.Message(err, "bid not allowed")
	case errors.Is(err, auctionerrors.ErrInsufficientCredits):
		return http.StatusUnprocessableEntity, auctionerrors.Message(err, "insufficient credits")
	case errors.Is(err, auctionerrors.ErrTitleRequired),
		errors.Is(err, auctionerrors.ErrMediaRequired),
		errors.Is(err, auctionerrors.ErrTooManyMedia),
		errors.Is(err, auctionerrors.ErrInvalidDuration),
		errors.Is(err, auctionerrors.ErrInvalidUsername):
		return http.StatusBadRequest, auctionerrors.Message(err, "invalid input")
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		return status, auctionerrors.Message(err, auctionerrors.MsgUnexpectedRequest)
	case errors.As(err, &transportErr):
		return http.StatusBadGateway, auctionerrors.MsgUnexpectedRequest
	case errors.Is(err, auctionerrors.ErrBidRejected):
		return http.StatusUnprocessableEntity, "bid rejected"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// SortOrderFor returns the order requested for a sort key: soonest deadline first,
// newest first for everything else.
func SortOrderFor(sort api.SortKey) api.SortOrder {
	if sort == api.SortEndsAt {
		return api.OrderAsc
	}
	return api.OrderDesc
}

// HomeTitle names the listing grid for a sort key
func HomeTitle(sort api.SortKey) string {
	switch sort {
	case api.SortEndsAt:
		return "Ending Soon"
	case api.SortUpdated:
		return "Most Active"
	default:
		return "Latest Listings"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
