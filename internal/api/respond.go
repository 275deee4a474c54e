package api

import (
	"bookstore/internal/address"
	"bookstore/internal/catalog"
	"bookstore/internal/checkout"
	"bookstore/internal/logger"
	"bookstore/internal/store"
	"bookstore/internal/user"
	"bookstore/internal/utils"
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	errNotFound            = errors.New("not found")
	errInvalidStatus       = errors.New("invalid order status")
	errInvalidSort         = errors.New("invalid sort option")
	errInvalidRole         = errors.New("invalid role")
	errInvalidSellerStatus = errors.New("invalid seller status")
	errNoSession           = errors.New("session is gone")
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	utils.WriteJSON(w, status, v)
}

// sessionStore is set by SessionMiddleware for every /api route.
func sessionStore(w http.ResponseWriter, r *http.Request) (*store.Store, bool) {
	st, ok := utils.GetStoreFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, http.StatusInternalServerError, "internal", "no session")
	}
	return st, ok
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}
	return true
}

// writeError maps domain errors to status codes. Unknown errors are logged and hidden.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "internal"

	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, checkout.ErrNotAuthenticated):
		status, code = http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, catalog.ErrNotBookOwner):
		status, code = http.StatusForbidden, "forbidden"
	case errors.Is(err, errNotFound),
		errors.Is(err, catalog.ErrBookNotFound),
		errors.Is(err, address.ErrAddressNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, address.ErrLastAddress):
		status, code = http.StatusConflict, "conflict"
	case errors.Is(err, catalog.ErrTitleRequired),
		errors.Is(err, catalog.ErrAuthorRequired),
		errors.Is(err, catalog.ErrGenreRequired),
		errors.Is(err, catalog.ErrUnknownGenre),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrInvalidPages),
		errors.Is(err, catalog.ErrInvalidStock):
		status, code = http.StatusUnprocessableEntity, "validation_failed"
	case errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrBusinessNameRequired),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, checkout.ErrNoDeliveryAddress),
		errors.Is(err, checkout.ErrCartEmpty),
		errors.Is(err, checkout.ErrUnknownPaymentMethod),
		errors.Is(err, errInvalidStatus),
		errors.Is(err, errInvalidSort),
		errors.Is(err, errInvalidRole),
		errors.Is(err, errInvalidSellerStatus):
		status, code = http.StatusBadRequest, "invalid_request"
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromCtx(ctx).Error("request failed", zap.Error(err))
		message = http.StatusText(status)
	}
	utils.WriteJSONError(w, status, code, message)
}
