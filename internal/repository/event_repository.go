package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/acara-ticketing/internal/model"
)

const eventColumns = `id, name, slug, category_id, start_date, end_date, description, banner,
	is_featured, is_online, is_publish, region, address, latitude, longitude, created_by,
	created_at, updated_at`

// EventRepo encapsulates all database queries related to events.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the provided DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

func scanEvent(s scanner) (*model.Event, error) {
	var e model.Event
	err := s.Scan(&e.ID, &e.Name, &e.Slug, &e.CategoryID, &e.StartDate, &e.EndDate, &e.Description,
		&e.Banner, &e.IsFeatured, &e.IsOnline, &e.IsPublish, &e.Location.Region, &e.Location.Address,
		&e.Location.Latitude, &e.Location.Longitude, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts e and reloads it.  A slug collision surfaces as a
// duplicate entry *StoreError.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events (id, name, slug, category_id, start_date, end_date, description, banner,
			is_featured, is_online, is_publish, region, address, latitude, longitude, created_by)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		e.ID, e.Name, e.Slug, e.CategoryID, e.StartDate, e.EndDate, e.Description, e.Banner,
		e.IsFeatured, e.IsOnline, e.IsPublish, e.Location.Region, e.Location.Address,
		e.Location.Latitude, e.Location.Longitude, e.CreatedBy)
	if err != nil {
		return wrapErr(err)
	}
	stored, err := r.FindByID(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = *stored
	return nil
}

// FindAll lists events newest first.  Search uses the FULLTEXT index on
// name and description.
func (r *EventRepo) FindAll(ctx context.Context, q model.PageQuery) ([]*model.Event, int64, error) {
	where, args := "1=1", []any{}
	if q.Search != "" {
		where = "MATCH(name, description) AGAINST (? IN NATURAL LANGUAGE MODE)"
		args = append(args, q.Search)
	}
	return page(ctx, r.db,
		"SELECT COUNT(*) FROM events WHERE "+where,
		"SELECT "+eventColumns+" FROM events WHERE "+where+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		args, q, scanEvent)
}

// FindByID returns ErrNotFound if no row matches.
func (r *EventRepo) FindByID(ctx context.Context, id string) (*model.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM events WHERE id = ?", id))
	return e, wrapErr(err)
}

// FindBySlug returns ErrNotFound if no row matches.
func (r *EventRepo) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM events WHERE slug = ?", slug))
	return e, wrapErr(err)
}

// Update replaces the editable fields.  The slug chosen at creation is kept.
func (r *EventRepo) Update(ctx context.Context, id string, in model.EventInput) (*model.Event, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET name = ?, category_id = ?, start_date = ?, end_date = ?, description = ?,
			banner = ?, is_featured = ?, is_online = ?, is_publish = ?, region = ?, address = ?,
			latitude = ?, longitude = ?
		 WHERE id = ?`,
		in.Name, in.CategoryID, in.StartDate, in.EndDate, in.Description, in.Banner,
		in.IsFeatured, in.IsOnline, in.IsPublish, in.Location.Region, in.Location.Address,
		in.Location.Latitude, in.Location.Longitude, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	if err := affected(res); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes an event and returns the removed row.
func (r *EventRepo) Delete(ctx context.Context, id string) (*model.Event, error) {
	e, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id); err != nil {
		return nil, wrapErr(err)
	}
	return e, nil
}
