package access

import (
	"testing"

	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
)

// The canonical staleness scenario: results stay frozen until the epoch
// moves, even when the grid changes underneath.
func TestCacheStaleUntilEpochBump(t *testing.T) {
	g := grid.New(30)
	g.Place(10, 10, grid.BuildingHospital)
	g.Tiles[10][9].Building.Type = grid.BuildingRoad

	c := NewCache()
	if !c.Connected(g, 10, 10, grid.BuildingHospital, 1) {
		t.Fatal("hospital with adjacent road should be connected")
	}

	// Remove the road in place. Same epoch: the stale true must survive.
	g.Tiles[10][9].Building.Type = grid.BuildingNone
	if !c.Connected(g, 10, 10, grid.BuildingHospital, 1) {
		t.Error("same epoch must return the memoized result, not recompute")
	}

	// New epoch: the whole table drops and the truth comes back.
	if c.Connected(g, 10, 10, grid.BuildingHospital, 2) {
		t.Error("epoch bump must force recomputation")
	}
}

func TestCacheEpochChangeDropsWholeTable(t *testing.T) {
	g := grid.New(20)
	g.Place(3, 3, grid.BuildingSchool)
	g.Place(10, 10, grid.BuildingFireStation)
	g.Tiles[3][2].Building.Type = grid.BuildingRoad
	g.Tiles[10][9].Building.Type = grid.BuildingRoad

	c := NewCache()
	c.Connected(g, 3, 3, grid.BuildingSchool, 1)
	c.Connected(g, 10, 10, grid.BuildingFireStation, 1)
	if c.Len() != 2 {
		t.Fatalf("memo has %d entries, want 2", c.Len())
	}

	c.Connected(g, 3, 3, grid.BuildingSchool, 2)
	if c.Len() != 1 {
		t.Errorf("epoch change should empty the table before the lookup, got %d entries", c.Len())
	}
}

func TestCacheKeyedByType(t *testing.T) {
	// A power plant and a school at the same anchor see different
	// neighborhoods, so the key must include the type.
	g := grid.New(12)
	g.Tiles[3][3].Building.Type = grid.BuildingRoad // diagonal to (4,4)

	c := NewCache()
	if !c.Connected(g, 4, 4, grid.BuildingPowerPlant, 1) {
		t.Error("power plant: diagonal road should connect")
	}
	if c.Connected(g, 4, 4, grid.BuildingSchool, 1) {
		t.Error("school: diagonal road must not connect, even with a cached power-plant hit at the same cell")
	}
}

func TestInvalidateForcesRecomputeOnSameEpoch(t *testing.T) {
	g := grid.New(20)
	g.Place(5, 5, grid.BuildingSchool)
	g.Tiles[5][4].Building.Type = grid.BuildingRoad

	c := NewCache()
	if !c.Connected(g, 5, 5, grid.BuildingSchool, 7) {
		t.Fatal("school should be connected")
	}

	g.Tiles[5][4].Building.Type = grid.BuildingNone
	c.Invalidate()

	// Same epoch as before: Invalidate must still force recomputation.
	if c.Connected(g, 5, 5, grid.BuildingSchool, 7) {
		t.Error("Invalidate should discard results regardless of version continuity")
	}
}

func TestCachedConnectedUsesDefaultCache(t *testing.T) {
	g := grid.New(10)
	g.Place(4, 4, grid.BuildingFireStation)
	g.Tiles[4][3].Building.Type = grid.BuildingRoad

	Default.Invalidate()
	if !CachedConnected(g, 4, 4, grid.BuildingFireStation, 1) {
		t.Error("fire station with adjacent road should be connected")
	}
	if Default.Len() != 1 {
		t.Errorf("default cache has %d entries, want 1", Default.Len())
	}
	Default.Invalidate()
}
