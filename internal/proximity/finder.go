package proximity

import (
	"localmarket-api/internal/hexgrid"
)

// Finder answers "which cells are near this home cell". It performs no I/O;
// callers filter their records by membership in the returned set.
type Finder struct {
	policy *RadiusPolicy
}

// NewFinder creates a finder using the given radius policy.
func NewFinder(policy *RadiusPolicy) *Finder {
	return &Finder{policy: policy}
}

// Policy returns the radius policy in use.
func (f *Finder) Policy() *RadiusPolicy {
	return f.policy
}

// FindNearby resolves radiusKm to a ring count and returns the disk around
// home.
func (f *Finder) FindNearby(home hexgrid.CellID, radiusKm float64) (hexgrid.CellSet, error) {
	k, err := f.policy.Rings(radiusKm)
	if err != nil {
		return nil, err
	}
	if home.IsZero() {
		return nil, ErrMissingHomeIndex
	}
	return hexgrid.DiskOf(home, k)
}
