package geo

import "github.com/paulmach/orb"

// DefaultCenter is the fallback plot point for districts without a known
// reference coordinate (central Tehran). Points are (lon, lat) as in orb.
var DefaultCenter = orb.Point{51.33, 35.72}

// TehranBounds is the bounding box used to sanity-check generated
// coordinates.
var TehranBounds = orb.Bound{
	Min: orb.Point{51.2, 35.5},
	Max: orb.Point{51.6, 35.9},
}

// LocationTable maps district codes to a fixed reference coordinate. It is
// immutable after construction and injected into the aggregator so the core
// never touches shared mutable state.
type LocationTable struct {
	points map[string]orb.Point
	def    orb.Point
}

// NewLocationTable copies the given mapping into an immutable table.
func NewLocationTable(points map[string]orb.Point, def orb.Point) *LocationTable {
	copied := make(map[string]orb.Point, len(points))
	for code, p := range points {
		copied[code] = p
	}
	return &LocationTable{points: copied, def: def}
}

// DefaultTable returns the reference coordinates for the scraped Tehran
// districts.
func DefaultTable() *LocationTable {
	return NewLocationTable(map[string]orb.Point{
		"1":  {51.4183, 35.7797}, // Shemiran
		"2":  {51.4026, 35.7797}, // Vanak
		"3":  {51.4399, 35.7869}, // Zaferaniyeh
		"6":  {51.3892, 35.7219}, // Yusefabad
		"15": {51.3753, 35.6669}, // Shahrak
	}, DefaultCenter)
}

// Lookup returns the reference coordinate for a district code, falling back
// to the table default for unknown codes.
func (t *LocationTable) Lookup(district string) orb.Point {
	if p, ok := t.points[district]; ok {
		return p
	}
	return t.def
}

// Codes returns the district codes present in the table.
func (t *LocationTable) Codes() []string {
	codes := make([]string, 0, len(t.points))
	for code := range t.points {
		codes = append(codes, code)
	}
	return codes
}

// InTehran reports whether a point falls inside the Tehran bounding box.
func InTehran(p orb.Point) bool {
	return TehranBounds.Contains(p)
}
