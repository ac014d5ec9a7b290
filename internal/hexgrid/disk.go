package hexgrid

import (
	"fmt"
	"sort"
)

// CellSet is an unordered set of cell identifiers.
type CellSet map[CellID]struct{}

// NewCellSet builds a set from the given ids, dropping duplicates.
func NewCellSet(ids ...CellID) CellSet {
	s := make(CellSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s CellSet) Contains(id CellID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of cells in the set.
func (s CellSet) Len() int {
	return len(s)
}

// Intersects reports whether the two sets share at least one cell.
func (s CellSet) Intersects(other CellSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for id := range small {
		if large.Contains(id) {
			return true
		}
	}
	return false
}

// IsSupersetOf reports whether every cell of other is in s.
func (s CellSet) IsSupersetOf(other CellSet) bool {
	for id := range other {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// Sorted returns the cells as a sorted string slice, ready to be bound as a
// SQL array parameter.
func (s CellSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, string(id))
	}
	sort.Strings(out)
	return out
}

// DiskSize is the number of cells within k rings of a cell on an undistorted
// hexagonal lattice: 1 + 3k(k+1).
func DiskSize(k int) int {
	if k < 0 {
		return 0
	}
	return 1 + 3*k*(k+1)
}

// DiskOf returns every cell within k hops of center, center included.
//
// Near one of the twelve pentagons of the grid the disk holds fewer than
// DiskSize(k) cells; the result is still the complete disk.
func DiskOf(center CellID, k int) (CellSet, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRing, k)
	}
	origin, err := toH3(center)
	if err != nil {
		return nil, err
	}

	cells := origin.GridDisk(k)
	set := make(CellSet, len(cells))
	for _, c := range cells {
		if c == 0 {
			continue
		}
		set[CellID(c.String())] = struct{}{}
	}
	if !set.Contains(CellID(origin.String())) {
		return nil, fmt.Errorf("hexgrid: disk of %s at k=%d is missing its center", center, k)
	}
	return set, nil
}
