package access

import (
	"testing"

	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
)

func emptyGrid(size int) *grid.Grid {
	return grid.New(size)
}

func TestNonServiceAlwaysConnected(t *testing.T) {
	g := emptyGrid(10)
	for _, typ := range []grid.BuildingType{
		grid.BuildingHouse, grid.BuildingShop, grid.BuildingFactory,
		grid.BuildingNone, grid.BuildingTree,
	} {
		if !Connected(g, 5, 5, typ) {
			t.Errorf("%s should always be connected, roads or not", typ)
		}
	}
}

func TestServiceWithNoRoadsDisconnected(t *testing.T) {
	g := emptyGrid(10)
	for typ := range serviceTypes {
		if Connected(g, 4, 4, typ) {
			t.Errorf("%s on an empty grid should be disconnected", typ)
		}
	}
}

func TestCardinalAdjacency(t *testing.T) {
	// Hospital footprint 3x3 at (4,4) covers (4..6,4..6).
	cases := []struct {
		name string
		road grid.Cell
		want bool
	}{
		{"west of footprint", grid.Cell{X: 3, Y: 5}, true},
		{"east of footprint", grid.Cell{X: 7, Y: 4}, true},
		{"north of footprint", grid.Cell{X: 5, Y: 3}, true},
		{"south of footprint", grid.Cell{X: 6, Y: 7}, true},
		{"diagonal corner", grid.Cell{X: 3, Y: 3}, false},
		{"diagonal corner far", grid.Cell{X: 7, Y: 7}, false},
		{"distance two", grid.Cell{X: 2, Y: 5}, false},
	}
	for _, c := range cases {
		g := emptyGrid(12)
		g.Place(4, 4, grid.BuildingHospital)
		g.Tiles[c.road.Y][c.road.X].Building.Type = grid.BuildingRoad
		if got := Connected(g, 4, 4, grid.BuildingHospital); got != c.want {
			t.Errorf("%s: Connected = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestPowerPlantAcceptsDiagonal(t *testing.T) {
	// Power plant footprint 2x2 at (4,4) covers (4..5,4..5).
	cases := []struct {
		name string
		road grid.Cell
		want bool
	}{
		{"diagonal corner", grid.Cell{X: 3, Y: 3}, true},
		{"far diagonal corner", grid.Cell{X: 6, Y: 6}, true},
		{"cardinal", grid.Cell{X: 4, Y: 3}, true},
		{"distance two", grid.Cell{X: 2, Y: 4}, false},
		{"distance two diagonal", grid.Cell{X: 2, Y: 2}, false},
	}
	for _, c := range cases {
		g := emptyGrid(12)
		g.Place(4, 4, grid.BuildingPowerPlant)
		g.Tiles[c.road.Y][c.road.X].Building.Type = grid.BuildingRoad
		if got := Connected(g, 4, 4, grid.BuildingPowerPlant); got != c.want {
			t.Errorf("%s: Connected = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestConnectedAtMapEdge(t *testing.T) {
	// Neighbors off the map must be skipped, not treated as road.
	g := emptyGrid(5)
	g.Place(0, 0, grid.BuildingWaterTower)
	if Connected(g, 0, 0, grid.BuildingWaterTower) {
		t.Error("water tower in the corner of an empty map should be disconnected")
	}
	g.Tiles[0][1].Building.Type = grid.BuildingRoad
	if !Connected(g, 0, 0, grid.BuildingWaterTower) {
		t.Error("water tower with an adjacent road should be connected")
	}
}

func TestBridgeDeckCountsAsRoad(t *testing.T) {
	g := emptyGrid(10)
	g.Place(4, 4, grid.BuildingSchool)
	g.Tiles[4][3].Building.Type = grid.BuildingRoadBridge
	if !Connected(g, 4, 4, grid.BuildingSchool) {
		t.Error("a road bridge deck should satisfy road access")
	}
}

func TestConnectedIgnoresGrandfathering(t *testing.T) {
	g := emptyGrid(10)
	g.Place(4, 4, grid.BuildingSchool)
	g.Tiles[4][4].Building.GrandfatheredRoadAccess = true
	if Connected(g, 4, 4, grid.BuildingSchool) {
		t.Error("Connected must report raw topology; grandfathering is the caller's business")
	}
}
