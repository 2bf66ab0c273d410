package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters is the IUGG mean radius of the WGS84 ellipsoid.
const EarthRadiusMeters = 6371008.8

// DefaultCellDegrees is the grid cell edge used for spatial keys and the index.
const DefaultCellDegrees = 0.05

// Point is a WGS84 latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// Valid reports whether the point lies within WGS84 bounds.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Distance returns the great-circle distance in meters between a and b (haversine).
func Distance(a, b Point) float64 {
	phi1 := toRad(a.Lat)
	phi2 := toRad(b.Lat)
	dPhi := toRad(b.Lat - a.Lat)
	dLambda := toRad(b.Lon - a.Lon)

	s := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	if s > 1 {
		s = 1
	}
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(s))
}

// Cell is a row/column key on an equirectangular grid.
type Cell struct {
	Row int32 `json:"row"`
	Col int32 `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// ParseCell is the inverse of Cell.String.
func ParseCell(s string) (Cell, error) {
	var c Cell
	if _, err := fmt.Sscanf(s, "%d:%d", &c.Row, &c.Col); err != nil {
		return Cell{}, fmt.Errorf("geo: parse cell %q: %w", s, err)
	}
	return c, nil
}

// CellOf returns the grid cell containing p for the given cell edge in degrees.
func CellOf(p Point, cellDeg float64) Cell {
	g := newGrid(cellDeg)
	return Cell{Row: g.row(p.Lat), Col: g.col(p.Lon)}
}

type grid struct {
	deg  float64
	rows int32
	cols int32
}

func newGrid(cellDeg float64) grid {
	if cellDeg <= 0 || cellDeg > 90 {
		cellDeg = DefaultCellDegrees
	}
	return grid{
		deg:  cellDeg,
		rows: int32(math.Ceil(180 / cellDeg)),
		cols: int32(math.Ceil(360 / cellDeg)),
	}
}

func (g grid) row(lat float64) int32 {
	r := int32(math.Floor((lat + 90) / g.deg))
	return clamp(r, 0, g.rows-1)
}

func (g grid) col(lon float64) int32 {
	return g.wrapCol(int32(math.Floor((lon + 180) / g.deg)))
}

func (g grid) wrapCol(c int32) int32 {
	return ((c % g.cols) + g.cols) % g.cols
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

func toDeg(rad float64) float64 { return rad * 180 / math.Pi }
