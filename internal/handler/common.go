package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/repository"
	"github.com/iliyamo/acara-ticketing/internal/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	maxPage      = 1_000_000

	// storeTimeout bounds every database round trip made by a handler.
	storeTimeout = 5 * time.Second
)

// requestCtx derives the context for store calls from the request.
func requestCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), storeTimeout)
}

// pageQuery reads page, limit and search from the query string.  Missing
// or malformed numbers fall back to page 1 and 10 items.
func pageQuery(c echo.Context) model.PageQuery {
	q := model.PageQuery{Page: defaultPage, Limit: defaultLimit, Search: c.QueryParam("search")}
	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
		q.Page = min(n, maxPage)
	}
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil && n > 0 {
		q.Limit = min(n, maxLimit)
	}
	return q
}

// validID reports whether id is a well formed UUID.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// bind decodes the request body into dst.  Decoding failures are reported
// as a validation error on the "body" field.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return &validation.Error{Field: "body", Message: "invalid request body"}
	}
	return nil
}

// orNil maps a not-found error to a nil result, so the handler answers 200
// with null data.
func orNil[T any](v *T, err error) (*T, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return v, err
}
