// Package coverage computes the per-service fields the simulation tick
// consumes: police, fire, health and education as percentages, power and
// water as booleans. Fields are derived, not stored — every call allocates
// fresh arrays owned by the caller.
package coverage

import (
	"github.com/ericmatamoros/isometric-city-sub000/pkg/access"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
)

// Fields holds the six coverage outputs, all indexed [y][x].
type Fields struct {
	Police    [][]float64 `json:"police"`
	Fire      [][]float64 `json:"fire"`
	Health    [][]float64 `json:"health"`
	Education [][]float64 `json:"education"`
	Power     [][]bool    `json:"power"`
	Water     [][]bool    `json:"water"`
}

func newFields(size int) *Fields {
	f := &Fields{
		Police:    make([][]float64, size),
		Fire:      make([][]float64, size),
		Health:    make([][]float64, size),
		Education: make([][]float64, size),
		Power:     make([][]bool, size),
		Water:     make([][]bool, size),
	}
	for y := 0; y < size; y++ {
		f.Police[y] = make([]float64, size)
		f.Fire[y] = make([]float64, size)
		f.Health[y] = make([]float64, size)
		f.Education[y] = make([]float64, size)
		f.Power[y] = make([]bool, size)
		f.Water[y] = make([]bool, size)
	}
	return f
}

// Compute scans the grid once and produces all six fields. Only completed,
// non-abandoned service buildings contribute, and only when grandfathered or
// road-connected (checked through the supplied cache at the supplied epoch).
// Percentage contributions from multiple buildings accumulate and clamp at
// 100; boolean contributions OR together, so scan order never matters.
func Compute(g *grid.Grid, cache *access.Cache, epoch uint64, params Params) *Fields {
	f := newFields(g.Size)

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			b := g.Tiles[y][x].Building
			if !access.RequiresRoad(b.Type) {
				continue
			}
			if b.ConstructionProgress < 100 || b.Abandoned {
				continue
			}
			if !b.GrandfatheredRoadAccess && !cache.Connected(g, x, y, b.Type, epoch) {
				continue
			}

			switch b.Type {
			case grid.BuildingPowerPlant:
				stampBool(f.Power, g.Size, x, y, b.Type, params.PowerRange)
			case grid.BuildingWaterTower:
				stampBool(f.Water, g.Size, x, y, b.Type, params.WaterRange)
			case grid.BuildingPoliceStation:
				stampDecay(f.Police, g.Size, x, y, b.Type, params.Police)
			case grid.BuildingFireStation:
				stampDecay(f.Fire, g.Size, x, y, b.Type, params.Fire)
			case grid.BuildingHospital:
				stampDecay(f.Health, g.Size, x, y, b.Type, params.Health)
			case grid.BuildingSchool, grid.BuildingUniversity:
				stampDecay(f.Education, g.Size, x, y, b.Type, params.Education)
			}
		}
	}

	return f
}

// ComputeDefault is Compute with the process-wide cache and built-in tuning.
func ComputeDefault(g *grid.Grid, epoch uint64) *Fields {
	return Compute(g, access.Default, epoch, DefaultParams())
}

// footprintDistance is the Chebyshev distance from (x, y) to the nearest
// cell of the rectangle anchored at (ox, oy) with the given size.
func footprintDistance(x, y, ox, oy int, s grid.Size) int {
	dx := 0
	if x < ox {
		dx = ox - x
	} else if x > ox+s.W-1 {
		dx = x - (ox + s.W - 1)
	}
	dy := 0
	if y < oy {
		dy = oy - y
	} else if y > oy+s.H-1 {
		dy = y - (oy + s.H - 1)
	}
	if dx > dy {
		return dx
	}
	return dy
}

// stampBool OR-sets every cell within rng of the footprint. One source
// suffices; overlap changes nothing.
func stampBool(field [][]bool, size, ox, oy int, typ grid.BuildingType, rng int) {
	s := grid.SizeOf(typ)
	for y := max(0, oy-rng); y < min(size, oy+s.H+rng); y++ {
		for x := max(0, ox-rng); x < min(size, ox+s.W+rng); x++ {
			if footprintDistance(x, y, ox, oy, s) <= rng {
				field[y][x] = true
			}
		}
	}
}

// stampDecay adds a linearly decaying contribution to every cell within
// range of the footprint, clamped at 100.
func stampDecay(field [][]float64, size, ox, oy int, typ grid.BuildingType, p ServiceParams) {
	s := grid.SizeOf(typ)
	for y := max(0, oy-p.Range); y < min(size, oy+s.H+p.Range); y++ {
		for x := max(0, ox-p.Range); x < min(size, ox+s.W+p.Range); x++ {
			d := footprintDistance(x, y, ox, oy, s)
			if d >= p.Range {
				continue
			}
			v := field[y][x] + p.Strength*(1-float64(d)/float64(p.Range))
			if v > 100 {
				v = 100
			}
			field[y][x] = v
		}
	}
}
