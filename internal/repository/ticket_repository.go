package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/acara-ticketing/internal/model"
)

const ticketColumns = "id, name, description, price, quantity, event_id, created_at, updated_at"

// TicketRepo encapsulates all database queries related to tickets.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the provided DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

func scanTicket(s scanner) (*model.Ticket, error) {
	var t model.Ticket
	if err := s.Scan(&t.ID, &t.Name, &t.Description, &t.Price, &t.Quantity, &t.EventID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts t and reloads it.  The referenced event is not checked.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tickets (id, name, description, price, quantity, event_id) VALUES (?,?,?,?,?,?)",
		t.ID, t.Name, t.Description, t.Price, t.Quantity, t.EventID)
	if err != nil {
		return wrapErr(err)
	}
	stored, err := r.FindByID(ctx, t.ID)
	if err != nil {
		return err
	}
	*t = *stored
	return nil
}

// FindAll lists tickets newest first with optional full-text search.
func (r *TicketRepo) FindAll(ctx context.Context, q model.PageQuery) ([]*model.Ticket, int64, error) {
	where, args := "1=1", []any{}
	if q.Search != "" {
		where = "MATCH(name, description) AGAINST (? IN NATURAL LANGUAGE MODE)"
		args = append(args, q.Search)
	}
	return page(ctx, r.db,
		"SELECT COUNT(*) FROM tickets WHERE "+where,
		"SELECT "+ticketColumns+" FROM tickets WHERE "+where+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		args, q, scanTicket)
}

// FindByID returns ErrNotFound if no row matches.
func (r *TicketRepo) FindByID(ctx context.Context, id string) (*model.Ticket, error) {
	t, err := scanTicket(r.db.QueryRowContext(ctx, "SELECT "+ticketColumns+" FROM tickets WHERE id = ?", id))
	return t, wrapErr(err)
}

// FindByEvent lists every ticket of an event.
func (r *TicketRepo) FindByEvent(ctx context.Context, eventID string) ([]*model.Ticket, error) {
	return list(ctx, r.db,
		"SELECT "+ticketColumns+" FROM tickets WHERE event_id = ? ORDER BY created_at DESC",
		[]any{eventID}, scanTicket)
}

// Update replaces the editable fields and returns the stored row.
func (r *TicketRepo) Update(ctx context.Context, id string, in model.TicketInput) (*model.Ticket, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tickets SET name = ?, description = ?, price = ?, quantity = ?, event_id = ? WHERE id = ?",
		in.Name, in.Description, in.Price, in.Quantity, in.EventID, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	if err := affected(res); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes a ticket and returns the removed row.
func (r *TicketRepo) Delete(ctx context.Context, id string) (*model.Ticket, error) {
	t, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tickets WHERE id = ?", id); err != nil {
		return nil, wrapErr(err)
	}
	return t, nil
}
