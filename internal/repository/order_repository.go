package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/acara-ticketing/internal/model"
)

const orderColumns = `id, order_id, user_id, ticket_id, event_id, quantity, total, status,
	payment_token, payment_redirect_url, created_at, updated_at`

// OrderRepo persists orders in the `orders` table.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo constructs an OrderRepo with the provided DB handle.
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func scanOrder(s scanner) (*model.Order, error) {
	var o model.Order
	err := s.Scan(&o.ID, &o.OrderID, &o.UserID, &o.TicketID, &o.EventID, &o.Quantity, &o.Total,
		&o.Status, &o.Payment.Token, &o.Payment.RedirectURL, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts o and reloads it.
func (r *OrderRepo) Create(ctx context.Context, o *model.Order) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO orders (id, order_id, user_id, ticket_id, event_id, quantity, total, status,
			payment_token, payment_redirect_url)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		o.ID, o.OrderID, o.UserID, o.TicketID, o.EventID, o.Quantity, o.Total, o.Status,
		o.Payment.Token, o.Payment.RedirectURL)
	if err != nil {
		return wrapErr(err)
	}
	stored, err := r.FindByOrderID(ctx, o.OrderID)
	if err != nil {
		return err
	}
	*o = *stored
	return nil
}

// FindAll lists every order newest first; search matches the order id.
func (r *OrderRepo) FindAll(ctx context.Context, q model.PageQuery) ([]*model.Order, int64, error) {
	where, args := "1=1", []any{}
	if q.Search != "" {
		where = "LOWER(order_id) LIKE ?"
		args = append(args, likePattern(q.Search))
	}
	return page(ctx, r.db,
		"SELECT COUNT(*) FROM orders WHERE "+where,
		"SELECT "+orderColumns+" FROM orders WHERE "+where+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		args, q, scanOrder)
}

// FindAllByUser lists the orders placed by one user.
func (r *OrderRepo) FindAllByUser(ctx context.Context, userID string, q model.PageQuery) ([]*model.Order, int64, error) {
	return page(ctx, r.db,
		"SELECT COUNT(*) FROM orders WHERE user_id = ?",
		"SELECT "+orderColumns+" FROM orders WHERE user_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?",
		[]any{userID}, q, scanOrder)
}

// FindByOrderID returns ErrNotFound if no row matches.
func (r *OrderRepo) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE order_id = ?", orderID))
	return o, wrapErr(err)
}

// ErrOrderSettled is returned when a status change targets an order that is
// no longer pending.
var ErrOrderSettled = errors.New("order already settled")

// UpdateStatus moves a pending order to status.  Completed and cancelled
// orders are final.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = ? WHERE order_id = ? AND status = ?",
		status, orderID, model.OrderPending)
	if err != nil {
		return nil, wrapErr(err)
	}
	if err := affected(res); err != nil {
		if _, ferr := r.FindByOrderID(ctx, orderID); ferr != nil {
			return nil, ferr
		}
		return nil, ErrOrderSettled
	}
	return r.FindByOrderID(ctx, orderID)
}
