package signup

import (
	"net/http"

	"github.com/outputfield/web/handler"
)

// Client-facing outcomes. Their messages are the only error text a client
// ever sees.
var (
	ErrOnlyPost        = handler.NewHTTPError(http.StatusMethodNotAllowed, "Only accepts POSTs with body of { email: string }")
	ErrMissingEmail    = handler.NewHTTPError(http.StatusNotImplemented, "Missing email.")
	ErrInvalidEmail    = handler.NewHTTPError(http.StatusBadGateway, "Please enter valid email.")
	ErrEmailUsed       = handler.NewHTTPError(http.StatusBadRequest, "Email is already used.")
	ErrAuth            = handler.NewHTTPError(http.StatusForbidden, "Internal auth issue")
	ErrSubscribeFailed = handler.NewHTTPError(http.StatusInternalServerError, "Failed to subscribe.")
)
