// Package repository defines error types that are reused across multiple
// repositories.  ErrNotFound is returned when a lookup matches no row;
// StoreError wraps constraint failures reported by MySQL so that higher
// layers can render the driver's code, name and message.
package repository

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when no row matches a lookup.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEntry is the MySQL error number for a unique index violation.
const ErrDuplicateEntry = 1062

// StoreError is a structural error raised by the database itself, e.g. a
// unique index violation.  Code is the MySQL error number.
type StoreError struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
	err     error
}

func (e *StoreError) Error() string { return e.Message }

func (e *StoreError) Unwrap() error { return e.err }

// IsDuplicate reports whether err is a unique index violation.
func IsDuplicate(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrDuplicateEntry
}

// wrapErr converts driver errors into StoreError and sql.ErrNoRows into
// ErrNotFound.  Any other error is returned unchanged.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		name := "MySQLError"
		if me.Number == ErrDuplicateEntry {
			name = "DuplicateKeyError"
		}
		return &StoreError{Code: int(me.Number), Name: name, Message: me.Message, err: err}
	}
	return err
}
