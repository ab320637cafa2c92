package model

import "time"

// Order statuses.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Payment is the gateway response attached to an order.
type Payment struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// Order records a member's purchase of a ticket.  OrderID is the public
// identifier sent to the payment gateway.
type Order struct {
	ID        string    `json:"_id"`
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"createdBy"`
	TicketID  string    `json:"ticket"`
	EventID   string    `json:"events"`
	Quantity  uint32    `json:"quantity"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	Payment   Payment   `json:"payment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
