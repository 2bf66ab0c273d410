package geo

import (
	"bytes"
	"iter"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Entry is one indexed unit position.
type Entry struct {
	ID    uuid.UUID
	Point Point
	Attrs map[string]any
}

// Candidate is a query hit.
type Candidate struct {
	ID             uuid.UUID
	Point          Point
	DistanceMeters float64
}

// QueryOptions narrows a radius query.
type QueryOptions struct {
	// Limit caps the number of emitted candidates. Zero means unbounded.
	Limit int
	// Filter drops entries before ranking.
	Filter func(Entry) bool
}

type snapshot struct {
	cells   map[Cell][]Entry
	size    int
	builtAt time.Time
}

// Index is a grid spatial index over unit positions.
//
// The index is an immutable snapshot replaced wholesale by Rebuild, so Query
// never waits on maintenance. Results are as fresh as the last Rebuild.
type Index struct {
	grid grid
	snap atomic.Pointer[snapshot]
}

func NewIndex(cellDeg float64) *Index {
	idx := &Index{grid: newGrid(cellDeg)}
	idx.snap.Store(&snapshot{cells: map[Cell][]Entry{}})
	return idx
}

// Rebuild replaces the indexed set. Entries with invalid coordinates are skipped.
func (idx *Index) Rebuild(entries []Entry) {
	cells := make(map[Cell][]Entry, len(entries))
	size := 0
	for _, en := range entries {
		if !en.Point.Valid() {
			continue
		}
		c := Cell{Row: idx.grid.row(en.Point.Lat), Col: idx.grid.col(en.Point.Lon)}
		cells[c] = append(cells[c], en)
		size++
	}
	idx.snap.Store(&snapshot{cells: cells, size: size, builtAt: time.Now()})
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return idx.snap.Load().size
}

// BuiltAt returns when the current snapshot was built.
func (idx *Index) BuiltAt() time.Time {
	return idx.snap.Load().builtAt
}

// Query yields entries within radiusMeters of center in ascending distance,
// ties broken by ascending id.
func (idx *Index) Query(center Point, radiusMeters float64, opts QueryOptions) iter.Seq[Candidate] {
	snap := idx.snap.Load()
	return func(yield func(Candidate) bool) {
		if radiusMeters <= 0 || !center.Valid() || snap.size == 0 {
			return
		}

		var hits []Candidate
		visit := func(en Entry) {
			d := Distance(center, en.Point)
			if d > radiusMeters {
				return
			}
			if opts.Filter != nil && !opts.Filter(en) {
				return
			}
			hits = append(hits, Candidate{ID: en.ID, Point: en.Point, DistanceMeters: d})
		}

		cov := idx.cover(center, radiusMeters)
		if cov.count() > len(snap.cells) {
			// Wide caps touch more grid cells than are populated.
			for _, entries := range snap.cells {
				for _, en := range entries {
					visit(en)
				}
			}
		} else {
			for r := cov.minRow; r <= cov.maxRow; r++ {
				for _, c := range cov.cols {
					for _, en := range snap.cells[Cell{Row: r, Col: c}] {
						visit(en)
					}
				}
			}
		}

		slices.SortFunc(hits, compareCandidates)

		for i, h := range hits {
			if opts.Limit > 0 && i >= opts.Limit {
				return
			}
			if !yield(h) {
				return
			}
		}
	}
}

func compareCandidates(a, b Candidate) int {
	switch {
	case a.DistanceMeters < b.DistanceMeters:
		return -1
	case a.DistanceMeters > b.DistanceMeters:
		return 1
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

// cellRange is the set of cells intersecting a spherical cap: every column in
// cols for each row in [minRow, maxRow].
type cellRange struct {
	minRow, maxRow int32
	cols           []int32
}

func (cr cellRange) count() int {
	return int(cr.maxRow-cr.minRow+1) * len(cr.cols)
}

// cover returns the cells intersecting the spherical cap around center.
func (idx *Index) cover(center Point, radiusMeters float64) cellRange {
	g := idx.grid
	angular := radiusMeters / EarthRadiusMeters
	dLat := toDeg(angular)

	cr := cellRange{
		minRow: g.row(math.Max(-90, center.Lat-dLat)),
		maxRow: g.row(math.Min(90, center.Lat+dLat)),
	}

	fullLon := center.Lat+dLat >= 90 || center.Lat-dLat <= -90 || angular >= math.Pi/2
	var dLon float64
	if !fullLon {
		ratio := math.Sin(angular) / math.Cos(toRad(center.Lat))
		if ratio >= 1 {
			fullLon = true
		} else {
			dLon = toDeg(math.Asin(ratio))
		}
	}

	from := int32(math.Floor((center.Lon - dLon + 180) / g.deg))
	to := int32(math.Floor((center.Lon + dLon + 180) / g.deg))
	if fullLon || to-from+1 >= g.cols {
		cr.cols = make([]int32, g.cols)
		for i := range cr.cols {
			cr.cols[i] = int32(i)
		}
	} else {
		cr.cols = make([]int32, 0, to-from+1)
		for c := from; c <= to; c++ {
			cr.cols = append(cr.cols, g.wrapCol(c))
		}
	}
	return cr
}
