package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

// User-facing messages for failed requests.
const (
	msgNetwork      = "Network error - please check your connection"
	msgUnauthorized = "Session expired - please log in again"
	msgForbidden    = "Access denied - insufficient permissions"
	msgNotFound     = "Resource not found"
	msgValidation   = "Validation failed"
	msgServer       = "Server error - please try again later"
	msgUnexpected   = "An unexpected error occurred"
)

// classify maps a failed status to its kind and user message. bodyMsg is the
// message the server sent, used for 422 and unlisted statuses.
func classify(status int, bodyMsg string) (domain.ErrorKind, string) {
	switch status {
	case http.StatusUnauthorized:
		return domain.KindUnauthorized, msgUnauthorized
	case http.StatusForbidden:
		return domain.KindForbidden, msgForbidden
	case http.StatusNotFound:
		return domain.KindNotFound, msgNotFound
	case http.StatusUnprocessableEntity:
		return domain.KindValidation, orDefault(bodyMsg, msgValidation)
	case http.StatusInternalServerError:
		return domain.KindServer, msgServer
	default:
		return domain.KindStatus, orDefault(bodyMsg, msgUnexpected)
	}
}

// bodyMessage extracts the envelope's message, then its error, from a
// failed response body. Non-JSON bodies yield "".
func bodyMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return ""
	}
	if msg := strings.TrimSpace(payload.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(payload.Error)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
