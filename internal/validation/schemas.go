package validation

import (
	"errors"
	"math"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/iliyamo/acara-ticketing/internal/model"
)

// MaxQuantity is the largest quantity an INT UNSIGNED column holds.
const MaxQuantity = int(math.MaxUint32)

// Register validates a registration payload.
//
// confirmPassword must be present, but an explicit empty string is accepted
// as matching any password.
func Register(in model.RegisterInput) error {
	return Check(
		F("fullName", in.FullName, required("fullName")),
		F("userName", in.UserName, required("userName")),
		F("email", in.Email, required("email"), email("email")),
		F("password", in.Password, strongPassword("password")...),
		F("confirmPassword", in.ConfirmPassword, present("confirmPassword"), matchesOrEmpty(in.Password)),
	)
}

// Login validates a login payload.  The password policy is applied here as
// well, so accounts created under a weaker policy cannot sign in.
func Login(in model.LoginInput) error {
	return Check(
		F("identifier", in.Identifier, required("identifier")),
		F("password", in.Password, strongPassword("password")...),
	)
}

// UpdatePassword validates a password change.
func UpdatePassword(in model.UpdatePasswordInput) error {
	return Check(
		F("oldPassword", in.OldPassword, required("oldPassword")),
		F("password", in.Password, strongPassword("password")...),
		F("confirmPassword", in.ConfirmPassword, present("confirmPassword"), matchesOrEmpty(in.Password)),
	)
}

// UpdateProfile validates a profile update.
func UpdateProfile(in model.UpdateProfileInput) error {
	return Check(
		F("fullName", in.FullName, required("fullName")),
	)
}

// Activation validates an activation request.
func Activation(in model.ActivationInput) error {
	return Check(F("code", in.Code, required("code")))
}

// Category validates a category payload.
func Category(in model.CategoryInput) error {
	return Check(
		F("name", in.Name, required("name")),
		F("description", in.Description, required("description")),
	)
}

// Event validates an event payload.
func Event(in model.EventInput) error {
	return Check(
		F("name", in.Name, required("name")),
		F("category", in.CategoryID, required("category")),
		F("startDate", in.StartDate, required("startDate")),
		F("endDate", in.EndDate, required("endDate"), notBefore(in.StartDate)),
		F("description", in.Description, required("description")),
	)
}

// Ticket validates a ticket payload.
func Ticket(in model.TicketInput) error {
	return Check(
		F("name", in.Name, required("name")),
		F("price", in.Price, present("price"), atLeast("price", 0.0)),
		F("quantity", in.Quantity, present("quantity"), atLeast("quantity", 0), atMost("quantity", MaxQuantity)),
		F("events", in.EventID, required("events")),
		F("description", in.Description, required("description")),
	)
}

// Order validates an order payload.
func Order(in model.OrderInput) error {
	return Check(
		F("ticket", in.TicketID, required("ticket")),
		F("quantity", in.Quantity, required("quantity"), atLeast("quantity", 1), atMost("quantity", MaxQuantity)),
	)
}

func notBefore(start *time.Time) validation.Rule {
	return validation.By(func(value interface{}) error {
		end, ok := value.(*time.Time)
		if !ok || end == nil || start == nil {
			return nil
		}
		if end.Before(*start) {
			return errors.New("endDate must not be before startDate")
		}
		return nil
	})
}
