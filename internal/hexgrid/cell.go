// Package hexgrid maps coordinates onto the H3 hexagonal grid and expands
// cells into disks of neighbouring cells.
//
// Cell identifiers are the canonical 15 character H3 strings, so ids written
// by other H3 implementations (for example h3-js) are interchangeable with
// the ones produced here.
package hexgrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/uber/h3-go/v4"
)

const (
	MinResolution = 0
	MaxResolution = 15

	// DefaultResolution gives cells with an edge of roughly 1.4 km.
	DefaultResolution = 7
)

var (
	ErrInvalidCoordinate = errors.New("hexgrid: invalid coordinate")
	ErrInvalidResolution = errors.New("hexgrid: invalid resolution")
	ErrInvalidCell       = errors.New("hexgrid: invalid cell id")
	ErrInvalidRing       = errors.New("hexgrid: invalid ring count")
)

// CellID is an opaque identifier of one hexagonal cell. The zero value means
// "no cell".
type CellID string

// IsZero reports whether c is the empty identifier.
func (c CellID) IsZero() bool {
	return c == ""
}

func (c CellID) String() string {
	return string(c)
}

// IndexOf returns the cell containing (lat, lng) at the given resolution.
func IndexOf(lat, lng float64, resolution int) (CellID, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return "", fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return "", fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinate, lng)
	}
	if resolution < MinResolution || resolution > MaxResolution {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidResolution, resolution, MinResolution, MaxResolution)
	}

	cell := h3.LatLngToCell(h3.NewLatLng(lat, lng), resolution)
	return CellID(cell.String()), nil
}

// ParseCellID validates an identifier read from storage or a request and
// returns it in canonical lower-case form.
func ParseCellID(s string) (CellID, error) {
	cell, err := toH3(CellID(s))
	if err != nil {
		return "", err
	}
	return CellID(cell.String()), nil
}

// Resolution returns the resolution the cell was indexed at.
func Resolution(c CellID) (int, error) {
	cell, err := toH3(c)
	if err != nil {
		return 0, err
	}
	return cell.Resolution(), nil
}

// Center returns the centroid of the cell in degrees.
func Center(c CellID) (lat, lng float64, err error) {
	cell, err := toH3(c)
	if err != nil {
		return 0, 0, err
	}
	ll := cell.LatLng()
	return ll.Lat, ll.Lng, nil
}

func toH3(c CellID) (h3.Cell, error) {
	if c.IsZero() {
		return 0, fmt.Errorf("%w: empty", ErrInvalidCell)
	}
	cell := h3.Cell(h3.IndexFromString(string(c)))
	if !cell.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCell, string(c))
	}
	return cell, nil
}

// Indexer indexes coordinates at a fixed resolution. It holds no other state
// and is safe for concurrent use.
type Indexer struct {
	resolution int
}

// NewIndexer creates an indexer for the given resolution.
func NewIndexer(resolution int) (*Indexer, error) {
	if resolution < MinResolution || resolution > MaxResolution {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidResolution, resolution, MinResolution, MaxResolution)
	}
	return &Indexer{resolution: resolution}, nil
}

// Resolution returns the indexer's resolution.
func (i *Indexer) Resolution() int {
	return i.resolution
}

// Index returns the cell containing (lat, lng) at the indexer's resolution.
func (i *Indexer) Index(lat, lng float64) (CellID, error) {
	return IndexOf(lat, lng, i.resolution)
}
