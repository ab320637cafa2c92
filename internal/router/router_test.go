package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/acara-ticketing/internal/handler"
	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/utils"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func newTestServer(t *testing.T, db handler.Pinger) (*echo.Echo, *utils.TokenIssuer) {
	t.Helper()
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	// Stores stay nil: every request below is answered before a store is hit.
	h := Handlers{
		Health:     handler.Health(db),
		Auth:       handler.NewAuthHandler(nil),
		Categories: handler.NewCategoryHandler(nil),
		Events:     handler.NewEventHandler(nil),
		Tickets:    handler.NewTicketHandler(nil),
		Orders:     handler.NewOrderHandler(nil, nil),
	}
	return New(log, h, Guards{Tokens: tokens}), tokens
}

func do(t *testing.T, e *echo.Echo, method, target, token string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func message(body map[string]any) string {
	meta, _ := body["meta"].(map[string]any)
	s, _ := meta["message"].(string)
	return s
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t, pinger{})
	code, body := do(t, e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", message(body))

	e, _ = newTestServer(t, pinger{err: errors.New("down")})
	code, _ = do(t, e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestAdminWriteRequiresToken(t *testing.T) {
	e, _ := newTestServer(t, pinger{})
	for _, target := range []string{"/api/categories", "/api/events", "/api/tickets"} {
		code, _ := do(t, e, http.MethodPost, target, "")
		assert.Equal(t, http.StatusForbidden, code, target)
	}
}

func TestAdminWriteRejectsMember(t *testing.T) {
	e, tokens := newTestServer(t, pinger{})
	tok, err := tokens.Issue(utils.Claims{ID: "u1", Role: model.RoleMember})
	require.NoError(t, err)

	code, body := do(t, e, http.MethodDelete, "/api/events/00000000-0000-0000-0000-000000000001", tok)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "forbidden", message(body))
}

func TestOrderRoutesByRole(t *testing.T) {
	e, tokens := newTestServer(t, pinger{})
	admin, err := tokens.Issue(utils.Claims{ID: "a1", Role: model.RoleAdmin})
	require.NoError(t, err)
	member, err := tokens.Issue(utils.Claims{ID: "m1", Role: model.RoleMember})
	require.NoError(t, err)

	code, _ := do(t, e, http.MethodPost, "/api/orders", admin)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, e, http.MethodGet, "/api/orders", member)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, e, http.MethodPut, "/api/orders/ORD-1/completed", member)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestPublicReadRejectsMalformedID(t *testing.T) {
	e, _ := newTestServer(t, pinger{})
	for _, target := range []string{"/api/categories/nope", "/api/events/nope", "/api/tickets/nope"} {
		code, _ := do(t, e, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, code, target)
	}
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	e, _ := newTestServer(t, pinger{})
	code, body := do(t, e, http.MethodGet, "/api/nowhere", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body, "meta")
}
