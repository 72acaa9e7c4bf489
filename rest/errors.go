package rest

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// statusFor maps service errors to HTTP statuses: validation failures are 400,
// unknown activities 404, gated-off operations 403. Anything unrecognized is a
// 500 — the taxonomy has no retryable or partial-failure states.
func statusFor(err error) int {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return http.StatusInternalServerError
	}
	switch rich.Category {
	case goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// detailFor picks the client-facing message. Rich errors carry contract text
// ("Activity not found", "Invalid email format", ...); anything else is
// opaque to the client.
func detailFor(err error) string {
	var rich *goerrors.Error
	if goerrors.As(err, &rich) && rich.Message != "" {
		return rich.Message
	}
	return "Internal server error"
}

func writeError(c router.Context, err error) error {
	return writeJSON(c, statusFor(err), detailBody{Detail: detailFor(err)})
}
