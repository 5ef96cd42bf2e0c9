// Package access answers whether service buildings can reach the road
// network. Connectivity gates service coverage and placement: a police
// station nobody can drive to protects nothing.
package access

import "github.com/ericmatamoros/isometric-city-sub000/pkg/grid"

// serviceTypes is the fixed set of building types that require road access.
// Everything else is connected by definition.
var serviceTypes = map[grid.BuildingType]bool{
	grid.BuildingPowerPlant:    true,
	grid.BuildingWaterTower:    true,
	grid.BuildingPoliceStation: true,
	grid.BuildingFireStation:   true,
	grid.BuildingHospital:      true,
	grid.BuildingSchool:        true,
	grid.BuildingUniversity:    true,
}

// RequiresRoad reports whether a building type is subject to the road-access
// rule.
func RequiresRoad(t grid.BuildingType) bool {
	return serviceTypes[t]
}

var cardinalOffsets = [4]grid.Cell{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
}

var ringOffsets = [8]grid.Cell{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
}

// Connected reports whether the service building of the given type anchored
// at (x, y) touches the road network. Non-service types are always
// connected. Power plants accept the full 8-neighbor ring around their
// footprint (utilities tolerate being set back from the street); every other
// service type requires a cardinal neighbor — diagonal-only adjacency does
// not count. Out-of-range neighbors are skipped, never treated as road.
//
// Grandfathering is a caller concern: this function ignores
// GrandfatheredRoadAccess entirely.
func Connected(g *grid.Grid, x, y int, typ grid.BuildingType) bool {
	if !serviceTypes[typ] {
		return true
	}
	offsets := cardinalOffsets[:]
	if typ == grid.BuildingPowerPlant {
		offsets = ringOffsets[:]
	}
	for _, c := range grid.Footprint(x, y, typ) {
		for _, d := range offsets {
			nx, ny := c.X+d.X, c.Y+d.Y
			if !g.InBounds(nx, ny) {
				continue
			}
			if grid.IsRoad(g.Tiles[ny][nx].Building.Type) {
				return true
			}
		}
	}
	return false
}
