package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/acara-ticketing/internal/model"
)

const userColumns = `id, full_name, user_name, email, password, role, profile_picture,
	is_active, activation_code, created_at, updated_at`

// UserRepo persists users in the `users` table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

func scanUser(s scanner) (*model.User, error) {
	var u model.User
	err := s.Scan(&u.ID, &u.FullName, &u.UserName, &u.Email, &u.Password, &u.Role,
		&u.ProfilePicture, &u.IsActive, &u.ActivationCode, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts u and reloads it so database defaults (timestamps) are
// populated.  Duplicate usernames or emails surface as *StoreError with
// code 1062.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (id, full_name, user_name, email, password, role, profile_picture, is_active, activation_code)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		u.ID, u.FullName, u.UserName, u.Email, u.Password, u.Role, u.ProfilePicture, u.IsActive, u.ActivationCode)
	if err != nil {
		return wrapErr(err)
	}
	stored, err := r.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	*u = *stored
	return nil
}

// FindByID fetches a user by id.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
	return u, wrapErr(err)
}

// FindActiveByIdentifier fetches an active user whose username or email
// equals identifier.
func (r *UserRepo) FindActiveByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE (user_name=? OR email=?) AND is_active=1 LIMIT 1",
		identifier, identifier))
	return u, wrapErr(err)
}

// ActivateByCode marks the first user holding code as active and returns
// the updated row.  Activating an already active user is a no-op.
func (r *UserRepo) ActivateByCode(ctx context.Context, code string) (*model.User, error) {
	var id string
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM users WHERE activation_code=? ORDER BY created_at LIMIT 1", code).Scan(&id)
	if err != nil {
		return nil, wrapErr(err)
	}
	if _, err := r.DB.ExecContext(ctx, "UPDATE users SET is_active=1 WHERE id=?", id); err != nil {
		return nil, wrapErr(err)
	}
	return r.FindByID(ctx, id)
}

// UpdateProfile replaces the display fields of a user.
func (r *UserRepo) UpdateProfile(ctx context.Context, id, fullName, profilePicture string) (*model.User, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET full_name=?, profile_picture=? WHERE id=?", fullName, profilePicture, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	if err := affected(res); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// UpdatePassword stores a new password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) (*model.User, error) {
	res, err := r.DB.ExecContext(ctx, "UPDATE users SET password=? WHERE id=?", passwordHash, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	if err := affected(res); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
