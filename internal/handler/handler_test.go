package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Meta struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"meta"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total      int64 `json:"total"`
		TotalPages int64 `json:"totalPages"`
		Current    int   `json:"current"`
	} `json:"pagination"`
}

// serve runs one request through a bare Echo with h registered at route.
func serve(t *testing.T, method, route, target, body string, h echo.HandlerFunc, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	e := echo.New()
	e.Add(method, route, h, mws...)
	return run(t, e, newRequest(method, target, body))
}

func newRequest(method, target, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, target, nil)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func run(t *testing.T, e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}
