package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
)

// ErrorEnvelope standardizes JSON error responses. Details carries
// per-field validation errors; Debug carries the diagnostic trace and
// is only populated when debug responses are enabled.
type ErrorEnvelope struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
	Debug   []string          `json:"debug,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

// StatusFor maps the stable error taxonomy onto HTTP status codes.
// Anything uncategorized is a 500.
func StatusFor(err error) int {
	var fields serrors.ValidationErrors
	if errors.As(err, &fields) {
		return http.StatusBadRequest
	}
	base, ok := serrors.AsBase(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch base.Code {
	case serrors.CodeValidation, serrors.CodeLimitExceeded, serrors.CodeFKTargetMissing:
		return http.StatusBadRequest
	case serrors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case serrors.CodeForbidden:
		return http.StatusForbidden
	case serrors.CodeNotFound:
		return http.StatusNotFound
	case serrors.CodeConflict:
		return http.StatusConflict
	case serrors.CodeTransient, serrors.CodeProviderUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError translates err into a structured response. The request's
// diagnostic trace is attached only when debugResponses is set; it is
// always available through the request log either way.
func RespondError(w http.ResponseWriter, r *http.Request, err error, debugResponses bool) {
	status := StatusFor(err)
	envelope := &ErrorEnvelope{}

	var fields serrors.ValidationErrors
	if errors.As(err, &fields) {
		envelope.Error = "invalid payload"
		envelope.Code = serrors.CodeValidation
		envelope.Details = fields
	} else if base, ok := serrors.AsBase(err); ok {
		envelope.Error = base.Message
		envelope.Code = base.Code
	} else {
		envelope.Error = "internal server error"
		envelope.Code = serrors.CodeInternal
	}

	trace := composables.UseTrace(r.Context())
	if status >= http.StatusInternalServerError {
		composables.UseLogger(r.Context()).WithError(err).Error("request failed")
	}
	if debugResponses {
		envelope.Debug = trace.Entries()
	}
	_ = WriteJSON(w, status, envelope)
}
