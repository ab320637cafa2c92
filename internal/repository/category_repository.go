package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/acara-ticketing/internal/model"
)

const categoryColumns = "id, name, description, icon, created_at, updated_at"

// CategoryRepo encapsulates all database queries related to categories.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo with the provided DB handle.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func scanCategory(s scanner) (*model.Category, error) {
	var c model.Category
	if err := s.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts c and reloads it to populate timestamps.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, description, icon) VALUES (?,?,?,?)",
		c.ID, c.Name, c.Description, c.Icon)
	if err != nil {
		return wrapErr(err)
	}
	stored, err := r.FindByID(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = *stored
	return nil
}

// FindAll lists categories newest first.  Search matches name or
// description case-insensitively.
func (r *CategoryRepo) FindAll(ctx context.Context, q model.PageQuery) ([]*model.Category, int64, error) {
	where, args := "1=1", []any{}
	if q.Search != "" {
		where = "(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)"
		like := likePattern(q.Search)
		args = append(args, like, like)
	}
	return page(ctx, r.db,
		"SELECT COUNT(*) FROM categories WHERE "+where,
		"SELECT "+categoryColumns+" FROM categories WHERE "+where+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		args, q, scanCategory)
}

// FindByID returns ErrNotFound if no row matches.
func (r *CategoryRepo) FindByID(ctx context.Context, id string) (*model.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = ?", id))
	return c, wrapErr(err)
}

// Update replaces the editable fields and returns the stored row.
func (r *CategoryRepo) Update(ctx context.Context, id string, in model.CategoryInput) (*model.Category, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, description = ?, icon = ? WHERE id = ?",
		in.Name, in.Description, in.Icon, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	if err := affected(res); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes a category and returns the removed row.
func (r *CategoryRepo) Delete(ctx context.Context, id string) (*model.Category, error) {
	c, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id); err != nil {
		return nil, wrapErr(err)
	}
	return c, nil
}
