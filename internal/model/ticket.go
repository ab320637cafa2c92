package model

import "time"

// Ticket is a priced ticket class of an event.  EventID is a plain
// reference; the event's existence is not checked when a ticket is saved.
type Ticket struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    uint32    `json:"quantity"`
	EventID     string    `json:"events"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
