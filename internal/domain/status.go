package domain

import "time"

// StatusCheck is a diagnostic liveness record, unrelated to bookings.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
