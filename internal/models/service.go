package models

import "time"

type ServiceType string

const (
	ServiceTypeService ServiceType = "SERVICE"
	ServiceTypeTool    ServiceType = "TOOL"
	ServiceTypeSkill   ServiceType = "SKILL"
)

// Valid reports whether t is one of the known service types.
func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeService, ServiceTypeTool, ServiceTypeSkill:
		return true
	}
	return false
}

// Service is an offering published by a provider.
type Service struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Price          float64     `json:"price"`
	Type           ServiceType `json:"type"`
	ProviderID     string      `json:"provider_id"`
	NeighborhoodID *string     `json:"neighborhood_id"`
	CreatedAt      time.Time   `json:"created_at"`
}

// ServiceListing is a service together with the names shown next to it.
type ServiceListing struct {
	Service
	ProviderName     string `json:"provider_name"`
	NeighborhoodName string `json:"neighborhood_name,omitempty"`
	CellID           string `json:"cell_id,omitempty"`

	// Coordinates of the service's neighborhood, when it has one.
	Latitude  *float64 `json:"-"`
	Longitude *float64 `json:"-"`
}

// NearbyService is a listing annotated with its distance from the querying
// user's home neighborhood.
type NearbyService struct {
	ServiceListing
	DistanceKm float64 `json:"distance_km"`
}

// ProviderService is a provider's own service with the bookings made on it.
type ProviderService struct {
	Service
	Bookings []ServiceBooking `json:"bookings"`
}

// NewService is the input for publishing a service.
type NewService struct {
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Price            float64     `json:"price"`
	Type             ServiceType `json:"type"`
	NeighborhoodName string      `json:"neighborhood_name"`
}
