package model

import "time"

// Location describes where an event takes place.  Online events usually
// leave it empty.
type Location struct {
	Region    string  `json:"region"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Event is a scheduled happening that tickets are sold for.  Slug is derived
// from Name when the event is created and is unique.
type Event struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	CategoryID  string    `json:"category"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Description string    `json:"description"`
	Banner      string    `json:"banner"`
	IsFeatured  bool      `json:"isFeatured"`
	IsOnline    bool      `json:"isOnline"`
	IsPublish   bool      `json:"isPublish"`
	Location    Location  `json:"location"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
