package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/repository"
	"github.com/iliyamo/acara-ticketing/internal/utils"
	"github.com/iliyamo/acara-ticketing/internal/validation"
)

type body struct {
	Meta       Meta            `json:"meta"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

func record(t *testing.T, write func(c echo.Context) error) (*httptest.ResponseRecorder, body) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, write(c))
	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	return rec, b
}

type gatewayErr struct{ code int }

func (g gatewayErr) Error() string  { return "gateway said no" }
func (g gatewayErr) ErrorCode() int { return g.code }

func TestNewPagination(t *testing.T) {
	assert.Equal(t, int64(3), NewPagination(25, 10, 1).TotalPages)
	assert.Equal(t, int64(2), NewPagination(20, 10, 1).TotalPages)
	assert.Equal(t, int64(0), NewPagination(0, 10, 1).TotalPages)
	assert.Equal(t, int64(0), NewPagination(5, 0, 1).TotalPages)
}

func TestSuccessEnvelope(t *testing.T) {
	rec, b := record(t, func(c echo.Context) error {
		return Success(c, map[string]string{"name": "Music"}, "success create category")
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Meta{Status: 200, Message: "success create category"}, b.Meta)
	assert.JSONEq(t, `{"name":"Music"}`, string(b.Data))
	assert.Nil(t, b.Pagination)
}

func TestSuccessWithNilData(t *testing.T) {
	rec, b := record(t, func(c echo.Context) error {
		var u *model.User
		return Success(c, u, "user activated")
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(b.Data))
}

func TestPaginateNilItemsRenderAsEmptyArray(t *testing.T) {
	rec, b := record(t, func(c echo.Context) error {
		var items []*model.Category
		return Paginate(c, items, 0, model.PageQuery{Page: 1, Limit: 10}, "success find all category")
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(b.Data))
	require.NotNil(t, b.Pagination)
	assert.Equal(t, Pagination{Total: 0, TotalPages: 0, Current: 1}, *b.Pagination)
}

func TestPaginateKeepsCallerPage(t *testing.T) {
	_, b := record(t, func(c echo.Context) error {
		return Paginate(c, []string{"a"}, 25, model.PageQuery{Page: 7, Limit: 10}, "ok")
	})
	require.NotNil(t, b.Pagination)
	assert.Equal(t, Pagination{Total: 25, TotalPages: 3, Current: 7}, *b.Pagination)
}

func TestNotFoundAndUnauthorizedDefaults(t *testing.T) {
	rec, b := record(t, func(c echo.Context) error { return NotFound(c, "") })
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", b.Meta.Message)
	assert.Equal(t, "null", string(b.Data))

	rec, b = record(t, func(c echo.Context) error { return Unauthorized(c, "") })
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "unauthorized", b.Meta.Message)

	rec, b = record(t, func(c echo.Context) error { return Unauthorized(c, "user not found") })
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "user not found", b.Meta.Message)
}

func TestClassifyValidation(t *testing.T) {
	err := fmt.Errorf("register: %w", &validation.Error{Field: "email", Message: "email must be a valid email"})
	o := Classify(err, "failed registration")
	assert.Equal(t, KindValidation, o.Kind)
	assert.Equal(t, http.StatusBadRequest, o.Status)
	assert.Equal(t, "failed registration", o.Message)
	assert.Equal(t, map[string]string{"email": "email must be a valid email"}, o.Data)
}

func TestClassifyStoreError(t *testing.T) {
	se := &repository.StoreError{Code: 1062, Name: "DuplicateKeyError", Message: "Duplicate entry 'jane'"}
	rec, b := record(t, func(c echo.Context) error { return Error(c, se, "failed registration") })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Duplicate entry 'jane'", b.Meta.Message)
	assert.JSONEq(t, `{"code":1062,"name":"DuplicateKeyError","message":"Duplicate entry 'jane'"}`, string(b.Data))
}

func TestClassifyCoded(t *testing.T) {
	o := Classify(gatewayErr{code: 402}, "failed create order")
	assert.Equal(t, KindCoded, o.Kind)
	assert.Equal(t, http.StatusInternalServerError, o.Status)
	assert.Equal(t, "gateway said no", o.Message)
	assert.Equal(t, codedData{Code: 402, Name: "Error", Message: "gateway said no"}, o.Data)
}

// A validation error that also carries a code still classifies as validation.
type codedValidation struct{ ve *validation.Error }

func (c codedValidation) Error() string { return c.ve.Error() }
func (c codedValidation) Unwrap() error { return c.ve }
func (codedValidation) ErrorCode() int { return 11000 }

func TestClassifyPrecedence(t *testing.T) {
	err := codedValidation{&validation.Error{Field: "name", Message: "name is a required field"}}
	assert.Equal(t, KindValidation, Classify(err, "x").Kind)
}

func TestClassifySentinels(t *testing.T) {
	o := Classify(fmt.Errorf("find: %w", repository.ErrNotFound), "")
	assert.Equal(t, KindNotFound, o.Kind)
	assert.Equal(t, "not found", o.Message)

	o = Classify(utils.ErrUnauthenticated, "")
	assert.Equal(t, KindUnauthorized, o.Kind)
	assert.Equal(t, http.StatusForbidden, o.Status)
}

func TestClassifyFallback(t *testing.T) {
	o := Classify(errors.New("boom"), "failed find all category")
	assert.Equal(t, KindUnexpected, o.Kind)
	assert.Equal(t, http.StatusInternalServerError, o.Status)
	assert.Equal(t, "failed find all category", o.Message)
	assert.Equal(t, "boom", o.Data)

	assert.Nil(t, Classify(nil, "x").Data)
}

func TestHTTPErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, 404, b.Meta.Status)
	assert.Equal(t, "Not Found", b.Meta.Message)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, "internal server error", b.Meta.Message)
	assert.Equal(t, `"boom"`, string(b.Data))
}
