// Package proximity turns a kilometre radius into a set of nearby grid cells.
package proximity

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrUnsupportedRadius  = errors.New("proximity: unsupported radius")
	ErrMissingHomeIndex   = errors.New("proximity: home neighborhood has no cell index")
	ErrNonMonotonicPolicy = errors.New("proximity: ring count must not decrease as radius grows")
)

// DefaultRadiusRings maps each allowed radius in km to a ring count at
// resolution 7.
var DefaultRadiusRings = map[float64]int{
	5:  2,
	10: 3,
	25: 5,
}

type band struct {
	km    float64
	rings int
}

// RadiusPolicy is the single table translating a radius in km to a ring
// count. It is immutable once built.
type RadiusPolicy struct {
	bands []band
}

// NewRadiusPolicy validates the table and builds a policy from it.
func NewRadiusPolicy(rings map[float64]int) (*RadiusPolicy, error) {
	if len(rings) == 0 {
		return nil, fmt.Errorf("proximity: radius table is empty")
	}

	bands := make([]band, 0, len(rings))
	for km, k := range rings {
		if km <= 0 {
			return nil, fmt.Errorf("proximity: radius %v km must be positive", km)
		}
		if k < 0 {
			return nil, fmt.Errorf("proximity: ring count %d for %v km must not be negative", k, km)
		}
		bands = append(bands, band{km: km, rings: k})
	}
	sort.Slice(bands, func(i, j int) bool {
		return bands[i].km < bands[j].km
	})

	for i := 1; i < len(bands); i++ {
		if bands[i].rings < bands[i-1].rings {
			return nil, fmt.Errorf("%w: %v km -> %d but %v km -> %d",
				ErrNonMonotonicPolicy, bands[i-1].km, bands[i-1].rings, bands[i].km, bands[i].rings)
		}
	}

	return &RadiusPolicy{bands: bands}, nil
}

// MustRadiusPolicy is NewRadiusPolicy for static tables.
func MustRadiusPolicy(rings map[float64]int) *RadiusPolicy {
	p, err := NewRadiusPolicy(rings)
	if err != nil {
		panic(err)
	}
	return p
}

// Rings returns the ring count for an allowed radius.
func (p *RadiusPolicy) Rings(km float64) (int, error) {
	for _, b := range p.bands {
		if b.km == km {
			return b.rings, nil
		}
	}
	return 0, fmt.Errorf("%w: %v km (allowed: %s)", ErrUnsupportedRadius, km, p.describe())
}

// Allowed returns the supported radii in ascending order.
func (p *RadiusPolicy) Allowed() []float64 {
	out := make([]float64, len(p.bands))
	for i, b := range p.bands {
		out[i] = b.km
	}
	return out
}

func (p *RadiusPolicy) describe() string {
	parts := make([]string, len(p.bands))
	for i, b := range p.bands {
		parts[i] = strconv.FormatFloat(b.km, 'f', -1, 64)
	}
	return strings.Join(parts, ", ") + " km"
}

// ParseRadiusRings reads a table written as "km:rings" pairs separated by
// commas, e.g. "5:2,10:3,25:5".
func ParseRadiusRings(s string) (map[float64]int, error) {
	out := make(map[float64]int)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kmStr, ringsStr, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("proximity: malformed radius entry %q, want km:rings", pair)
		}
		km, err := strconv.ParseFloat(strings.TrimSpace(kmStr), 64)
		if err != nil {
			return nil, fmt.Errorf("proximity: invalid radius %q: %w", kmStr, err)
		}
		rings, err := strconv.Atoi(strings.TrimSpace(ringsStr))
		if err != nil {
			return nil, fmt.Errorf("proximity: invalid ring count %q: %w", ringsStr, err)
		}
		if _, dup := out[km]; dup {
			return nil, fmt.Errorf("proximity: radius %v listed twice", km)
		}
		out[km] = rings
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("proximity: radius table is empty")
	}
	return out, nil
}
