package etshipping

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPostalCode   = errors.New("postal code cannot be empty")
	ErrInvalidCoordinate = errors.New("coordinate out of range")
)

// PostalPoint a postal code with its reference coordinates
type PostalPoint struct {
	Code      string  `json:"code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	State     string  `json:"state"`
}

// Validate checks the code and coordinate ranges
func (p PostalPoint) Validate() error {
	if strings.TrimSpace(p.Code) == "" {
		return ErrEmptyPostalCode
	}
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// PostalTable immutable postal reference table, safe for concurrent reads
type PostalTable struct {
	points map[string]PostalPoint
}

// NewPostalTable builds a table from points. Invalid points are rejected;
// a repeated code keeps the last occurrence.
func NewPostalTable(points []PostalPoint) (*PostalTable, error) {
	m := make(map[string]PostalPoint, len(points))
	for _, p := range points {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		p.Code = NormalizePostalCode(p.Code)
		m[p.Code] = p
	}
	return &PostalTable{points: m}, nil
}

// Lookup finds the point for code
func (t *PostalTable) Lookup(code string) (PostalPoint, bool) {
	p, ok := t.points[NormalizePostalCode(code)]
	return p, ok
}

// Len number of postal codes in the table
func (t *PostalTable) Len() int {
	return len(t.points)
}

// Points copy of all points, in no particular order
func (t *PostalTable) Points() []PostalPoint {
	out := make([]PostalPoint, 0, len(t.points))
	for _, p := range t.points {
		out = append(out, p)
	}
	return out
}

// NormalizePostalCode trims spaces and drops a ZIP+4 suffix
func NormalizePostalCode(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.IndexByte(code, '-'); i > 0 {
		code = code[:i]
	}
	return code
}
