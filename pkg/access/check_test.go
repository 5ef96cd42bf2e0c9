package access

import (
	"testing"

	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
)

func TestCheckPlacementClean(t *testing.T) {
	g := grid.New(10)
	g.Tiles[4][1].Building.Type = grid.BuildingRoad
	r := CheckPlacement(g, 2, 4, grid.BuildingFireStation)
	if !r.OK || len(r.Findings) != 0 {
		t.Errorf("clean placement should pass, got %+v", r)
	}
}

func TestCheckPlacementWarnsWithoutRoad(t *testing.T) {
	g := grid.New(10)
	r := CheckPlacement(g, 2, 4, grid.BuildingFireStation)
	if !r.OK {
		t.Fatalf("missing road is a warning, not an error: %+v", r)
	}
	if len(r.Findings) != 1 || r.Findings[0].Severity != SeverityWarning {
		t.Errorf("expected one warning, got %+v", r.Findings)
	}
}

func TestCheckPlacementErrorsOffGrid(t *testing.T) {
	g := grid.New(10)
	r := CheckPlacement(g, 9, 9, grid.BuildingHospital)
	if r.OK {
		t.Error("footprint off the grid must be an error")
	}
}

func TestCheckPlacementErrorsOnOverlap(t *testing.T) {
	g := grid.New(10)
	g.Place(5, 5, grid.BuildingSchool)
	r := CheckPlacement(g, 4, 4, grid.BuildingHospital)
	if r.OK {
		t.Error("overlapping an existing building must be an error")
	}
}

func TestCheckPlacementNonServiceNeedsNoRoad(t *testing.T) {
	g := grid.New(10)
	r := CheckPlacement(g, 3, 3, grid.BuildingHouse)
	if !r.OK || len(r.Findings) != 0 {
		t.Errorf("houses have no road-access rule, got %+v", r)
	}
}
