package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingAccepted  BookingStatus = "ACCEPTED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Booking is a seeker's request for a service.
type Booking struct {
	ID        string        `json:"id"`
	ServiceID string        `json:"service_id"`
	SeekerID  string        `json:"seeker_id"`
	Status    BookingStatus `json:"status"`
	Rating    *int          `json:"rating"`
	Review    *string       `json:"review"`
	CreatedAt time.Time     `json:"created_at"`
}

// ServiceBooking is a booking as listed under a provider's service.
type ServiceBooking struct {
	ID         string        `json:"id"`
	SeekerName string        `json:"seeker_name"`
	Status     BookingStatus `json:"status"`
	Rating     *int          `json:"rating"`
}

// ProviderBooking is a booking on one of the provider's services.
type ProviderBooking struct {
	Booking
	Service    Service `json:"service"`
	SeekerName string  `json:"seeker_name"`
}
