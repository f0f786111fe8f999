package domain

import "time"

// BookingStatusPending is the only status a booking ever carries: no
// endpoint in this service transitions a booking out of it.
const BookingStatusPending = "pending"

// Booking is a persisted ride request. Date and time are free text as
// submitted by the customer and are not parsed as calendar values.
type Booking struct {
	BookingID      string    `json:"booking_id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	ServiceType    string    `json:"service_type"`
	PickupLocation string    `json:"pickup_location"`
	DropLocation   string    `json:"drop_location"`
	Date           string    `json:"date"`
	Time           string    `json:"time,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
