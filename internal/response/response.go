// Package response renders every handler outcome as the JSON envelope
// {meta: {status, message}, data[, pagination]}.
package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/repository"
	"github.com/iliyamo/acara-ticketing/internal/utils"
	"github.com/iliyamo/acara-ticketing/internal/validation"
)

// Meta is the status block of an envelope.
type Meta struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Pagination describes one page of a list.  Current is the page the caller
// asked for.
type Pagination struct {
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	Current    int   `json:"current"`
}

// NewPagination computes ceil(total/limit) pages.  A non-positive limit
// yields zero pages.
func NewPagination(total int64, limit, current int) Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Total: total, TotalPages: pages, Current: current}
}

// Envelope is the body of every response.
type Envelope struct {
	Meta       Meta        `json:"meta"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Kind tags an Outcome.
type Kind int

const (
	KindSuccess Kind = iota
	KindPage
	KindNotFound
	KindUnauthorized
	KindValidation
	KindStore
	KindCoded
	KindRateLimited
	KindUnexpected
	KindConflict
)

// Outcome is a classified handler result, ready to be written.
type Outcome struct {
	Kind       Kind
	Status     int
	Message    string
	Data       any
	Pagination *Pagination
}

// Envelope renders o.
func (o Outcome) Envelope() Envelope {
	return Envelope{
		Meta:       Meta{Status: o.Status, Message: o.Message},
		Data:       o.Data,
		Pagination: o.Pagination,
	}
}

// Coded is implemented by errors that carry a numeric code of their own,
// e.g. a payment gateway rejection.
type Coded interface {
	error
	ErrorCode() int
}

// codedData is the data block of store and coded errors.
type codedData struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Classify maps err to an Outcome.  Checks run in a fixed order because an
// error may match several shapes: validation, store, coded, then the
// not-found and unauthenticated sentinels, then the fallback.
func Classify(err error, msg string) Outcome {
	var ve *validation.Error
	if errors.As(err, &ve) {
		return Outcome{
			Kind:    KindValidation,
			Status:  http.StatusBadRequest,
			Message: msg,
			Data:    map[string]string{ve.Field: ve.Message},
		}
	}

	var se *repository.StoreError
	if errors.As(err, &se) {
		message := se.Message
		if message == "" {
			message = msg
		}
		return Outcome{
			Kind:    KindStore,
			Status:  http.StatusInternalServerError,
			Message: message,
			Data:    codedData{Code: se.Code, Name: se.Name, Message: se.Message},
		}
	}

	var ce Coded
	if errors.As(err, &ce) {
		message := ce.Error()
		if message == "" {
			message = msg
		}
		return Outcome{
			Kind:    KindCoded,
			Status:  http.StatusInternalServerError,
			Message: message,
			Data:    codedData{Code: ce.ErrorCode(), Name: "Error", Message: ce.Error()},
		}
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound(msg)
	case errors.Is(err, utils.ErrUnauthenticated):
		return unauthorized(msg)
	}

	var data any
	if err != nil {
		data = err.Error()
	}
	return Outcome{Kind: KindUnexpected, Status: http.StatusInternalServerError, Message: msg, Data: data}
}

func notFound(msg string) Outcome {
	if msg == "" {
		msg = "not found"
	}
	return Outcome{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg}
}

func unauthorized(msg string) Outcome {
	if msg == "" {
		msg = "unauthorized"
	}
	return Outcome{Kind: KindUnauthorized, Status: http.StatusForbidden, Message: msg}
}

// Write sends o as JSON.
func Write(c echo.Context, o Outcome) error {
	return c.JSON(o.Status, o.Envelope())
}

// Success writes a 200 envelope carrying data.
func Success(c echo.Context, data any, msg string) error {
	return Write(c, Outcome{Kind: KindSuccess, Status: http.StatusOK, Message: msg, Data: data})
}

// Paginate writes one page of items.  A nil slice is rendered as [].
func Paginate[T any](c echo.Context, items []T, total int64, q model.PageQuery, msg string) error {
	if items == nil {
		items = []T{}
	}
	p := NewPagination(total, q.Limit, q.Page)
	return Write(c, Outcome{Kind: KindPage, Status: http.StatusOK, Message: msg, Data: items, Pagination: &p})
}

// NotFound writes a 404 envelope.  An empty msg becomes "not found".
func NotFound(c echo.Context, msg string) error {
	return Write(c, notFound(msg))
}

// Unauthorized writes a 403 envelope.  An empty msg becomes "unauthorized".
func Unauthorized(c echo.Context, msg string) error {
	return Write(c, unauthorized(msg))
}

// Conflict writes a 409 envelope with null data.
func Conflict(c echo.Context, msg string) error {
	return Write(c, Outcome{Kind: KindConflict, Status: http.StatusConflict, Message: msg})
}

// Error classifies err and writes the result.
func Error(c echo.Context, err error, msg string) error {
	return Write(c, Classify(err, msg))
}
