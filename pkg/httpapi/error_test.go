package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation fields", serrors.ValidationErrors{"title": "required"}, http.StatusBadRequest},
		{"limit exceeded", serrors.NewLimitExceeded("cap reached"), http.StatusBadRequest},
		{"fk target missing", serrors.NewError(serrors.CodeFKTargetMissing, "related record does not exist"), http.StatusBadRequest},
		{"unauthenticated", serrors.NewError(serrors.CodeUnauthenticated, "not authenticated"), http.StatusUnauthorized},
		{"forbidden", serrors.NewError(serrors.CodeForbidden, "administrator role required"), http.StatusForbidden},
		{"not found", serrors.NewNotFound("portfolio item"), http.StatusNotFound},
		{"conflict", serrors.NewConflict("duplicate code"), http.StatusConflict},
		{"transient", serrors.NewTransient("backend unavailable"), http.StatusServiceUnavailable},
		{"provider outage", serrors.NewError(serrors.CodeProviderUnavailable, "provider unreachable"), http.StatusServiceUnavailable},
		{"uncategorized", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.err))
		})
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestRespondError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/portfolio", nil)

	RespondError(rec, req, serrors.ValidationErrors{"title": "required", "category": "must be one of: WEDDING_RINGS"}, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, serrors.CodeValidation, envelope.Code)
	assert.Equal(t, "required", envelope.Details["title"])
	assert.Empty(t, envelope.Debug)
}

func TestRespondError_HidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/portfolio", nil)

	RespondError(rec, req, errors.New("pq: relation does not exist"), false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, serrors.CodeInternal, envelope.Code)
	assert.NotContains(t, envelope.Error, "relation")
}

func TestRespondError_DebugTraceGate(t *testing.T) {
	trace := composables.NewTrace()
	trace.Add("auth: admin user-1 authorized")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/portfolio", nil)
	req = req.WithContext(composables.WithTrace(req.Context(), trace))

	rec := httptest.NewRecorder()
	RespondError(rec, req, serrors.NewNotFound("portfolio item"), false)
	assert.Empty(t, decodeEnvelope(t, rec).Debug, "trace must stay out of responses by default")

	rec = httptest.NewRecorder()
	RespondError(rec, req, serrors.NewNotFound("portfolio item"), true)
	assert.Equal(t, []string{"auth: admin user-1 authorized"}, decodeEnvelope(t, rec).Debug)
}
