// Package validation evaluates ordered rule tables against request payloads.
//
// A schema is a list of fields, each with its rules.  Fields are checked in
// declaration order and evaluation stops at the first violation, so callers
// only ever see one error: the offending field and a human readable message.
package validation

import (
	"errors"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Error is the first rule violation found in a payload.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Field is one row of a rule table.
type Field struct {
	name  string
	value interface{}
	rules []validation.Rule
}

// F declares a field and its rules.  Rules run in the given order.
func F(name string, value interface{}, rules ...validation.Rule) Field {
	return Field{name: name, value: value, rules: rules}
}

// Check walks the table and returns the first violation as *Error, or nil.
func Check(fields ...Field) error {
	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			var ie validation.InternalError
			if errors.As(err, &ie) {
				return fmt.Errorf("validating %s: %w", f.name, err)
			}
			return &Error{Field: f.name, Message: err.Error()}
		}
	}
	return nil
}

var (
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`[0-9]`)
)

func required(field string) validation.Rule {
	return validation.Required.Error(field + " is a required field")
}

func present(field string) validation.Rule {
	return validation.NotNil.Error(field + " is a required field")
}

func email(field string) validation.Rule {
	return is.Email.Error(field + " must be a valid email")
}

// strongPassword is the password policy: minimum length, one uppercase
// letter, one digit.  The order decides which message wins.
func strongPassword(field string) []validation.Rule {
	return []validation.Rule{
		required(field),
		validation.Length(6, 0).Error("Password must be at least 6 characters"),
		validation.Match(hasUpper).Error("Password must contain at least one uppercase letter"),
		validation.Match(hasDigit).Error("Password must contain at least one number"),
	}
}

// matchesOrEmpty accepts the referenced password or an empty string.
func matchesOrEmpty(password string) validation.Rule {
	return validation.By(func(value interface{}) error {
		v, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		s, _ := v.(string)
		if s == "" || s == password {
			return nil
		}
		return errors.New("Password not match")
	})
}

func atLeast(field string, threshold interface{}) validation.Rule {
	return validation.Min(threshold).Error(fmt.Sprintf("%s must be greater than or equal to %v", field, threshold))
}

func atMost(field string, threshold interface{}) validation.Rule {
	return validation.Max(threshold).Error(fmt.Sprintf("%s must be less than or equal to %v", field, threshold))
}
