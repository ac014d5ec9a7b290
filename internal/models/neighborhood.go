package models

// Neighborhood is a named area with a fixed coordinate and the grid cell it
// falls in. It does not change once seeded.
type Neighborhood struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CellID    string  `json:"cell_id"`
}

// NeighborhoodSummary is the public listing view of a neighborhood.
type NeighborhoodSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NeighborhoodInput is one (name, lat, lng) tuple supplied at setup time.
type NeighborhoodInput struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
