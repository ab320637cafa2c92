package handler

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/acara-ticketing/internal/middleware"
	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/repository"
	"github.com/iliyamo/acara-ticketing/internal/response"
)

// OrderPlacer is implemented by *service.OrderService.
type OrderPlacer interface {
	Create(ctx context.Context, userID string, in model.OrderInput) (*model.Order, error)
	Complete(ctx context.Context, orderID string) (*model.Order, error)
	Cancel(ctx context.Context, orderID string) (*model.Order, error)
}

// OrderReader is implemented by *repository.OrderRepo.
type OrderReader interface {
	FindAll(ctx context.Context, q model.PageQuery) ([]*model.Order, int64, error)
	FindAllByUser(ctx context.Context, userID string, q model.PageQuery) ([]*model.Order, int64, error)
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)
}

// OrderHandler serves /orders.
type OrderHandler struct {
	Orders OrderPlacer
	Reader OrderReader
}

func NewOrderHandler(p OrderPlacer, r OrderReader) *OrderHandler {
	return &OrderHandler{Orders: p, Reader: r}
}

// Create orders tickets for the signed-in member and returns the payment
// link.  An unknown ticket answers 404.
func (h *OrderHandler) Create(c echo.Context) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	var in model.OrderInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "failed to create order")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	o, err := h.Orders.Create(ctx, claims.ID, in)
	if err != nil {
		if isNotFound(err) {
			return response.NotFound(c, "ticket not found")
		}
		return response.Error(c, err, "failed to create order")
	}
	return response.Success(c, o, "success to create order")
}

func (h *OrderHandler) FindAll(c echo.Context) error {
	q := pageQuery(c)
	ctx, cancel := requestCtx(c)
	defer cancel()

	items, total, err := h.Reader.FindAll(ctx, q)
	if err != nil {
		return response.Error(c, err, "failed to find all orders")
	}
	return response.Paginate(c, items, total, q, "success find all orders")
}

func (h *OrderHandler) FindOne(c echo.Context) error {
	ctx, cancel := requestCtx(c)
	defer cancel()

	o, err := h.Reader.FindByOrderID(ctx, c.Param("orderId"))
	if isNotFound(err) {
		return response.NotFound(c, "order not found")
	}
	if err != nil {
		return response.Error(c, err, "failed to find one order")
	}
	if claims, _ := middleware.CurrentUser(c); claims.Role != model.RoleAdmin && o.UserID != claims.ID {
		return response.Unauthorized(c, "forbidden")
	}
	return response.Success(c, o, "success find one order")
}

// History lists the signed-in member's own orders.
func (h *OrderHandler) History(c echo.Context) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	q := pageQuery(c)
	ctx, cancel := requestCtx(c)
	defer cancel()

	items, total, err := h.Reader.FindAllByUser(ctx, claims.ID, q)
	if err != nil {
		return response.Error(c, err, "failed to find order history")
	}
	return response.Paginate(c, items, total, q, "success find order history")
}

func (h *OrderHandler) Complete(c echo.Context) error {
	ctx, cancel := requestCtx(c)
	defer cancel()

	o, err := h.Orders.Complete(ctx, c.Param("orderId"))
	if isNotFound(err) {
		return response.NotFound(c, "order not found")
	}
	if errors.Is(err, repository.ErrOrderSettled) {
		return response.Conflict(c, "order already settled")
	}
	if err != nil {
		return response.Error(c, err, "failed to complete order")
	}
	return response.Success(c, o, "order completed")
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	ctx, cancel := requestCtx(c)
	defer cancel()

	o, err := h.Orders.Cancel(ctx, c.Param("orderId"))
	if isNotFound(err) {
		return response.NotFound(c, "order not found")
	}
	if errors.Is(err, repository.ErrOrderSettled) {
		return response.Conflict(c, "order already settled")
	}
	if err != nil {
		return response.Error(c, err, "failed to cancel order")
	}
	return response.Success(c, o, "order cancelled")
}

func isNotFound(err error) bool {
	return err != nil && errors.Is(err, repository.ErrNotFound)
}
