package model

import "time"

// RegisterInput is the registration payload.  ConfirmPassword is a pointer
// so that an absent field can be told apart from an explicit empty string.
type RegisterInput struct {
	FullName        string  `json:"fullName"`
	UserName        string  `json:"userName"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
}

// LoginInput identifies a user by username or email.
type LoginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// ActivationInput carries the code mailed at registration.
type ActivationInput struct {
	Code string `json:"code"`
}

// UpdatePasswordInput changes the password of the signed-in user.
type UpdatePasswordInput struct {
	OldPassword     string  `json:"oldPassword"`
	Password        string  `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
}

// UpdateProfileInput changes display data of the signed-in user.
type UpdateProfileInput struct {
	FullName       string `json:"fullName"`
	ProfilePicture string `json:"profilePicture"`
}

// CategoryInput creates or replaces a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// EventInput creates or replaces an event.
type EventInput struct {
	Name        string     `json:"name"`
	CategoryID  string     `json:"category"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description"`
	Banner      string     `json:"banner"`
	IsFeatured  bool       `json:"isFeatured"`
	IsOnline    bool       `json:"isOnline"`
	IsPublish   bool       `json:"isPublish"`
	Location    Location   `json:"location"`
}

// TicketInput creates or replaces a ticket.
type TicketInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	EventID     string   `json:"events"`
}

// OrderInput buys Quantity tickets of one ticket class.
type OrderInput struct {
	TicketID string `json:"ticket"`
	Quantity int    `json:"quantity"`
}
