// Package queue defines message payloads exchanged over the message broker
// together with the publisher and consumer that move them.
package queue

import "time"

// UserRegisteredQueue carries UserRegisteredEvent messages.
const UserRegisteredQueue = "user.registered"

// UserRegisteredEvent is published once a new account has been stored.  It
// contains everything the activation mail needs, so the consumer never
// queries the primary database.
type UserRegisteredEvent struct {
	UserID         string    `json:"user_id"`
	FullName       string    `json:"full_name"`
	UserName       string    `json:"user_name"`
	Email          string    `json:"email"`
	ActivationLink string    `json:"activation_link"`
	CreatedAt      time.Time `json:"created_at"`
}
