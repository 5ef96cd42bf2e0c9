package grid

// Size is a building footprint in tiles.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// footprintSizes is the per-type footprint table. Types not listed are 1×1.
var footprintSizes = map[BuildingType]Size{
	BuildingApartment:     {2, 2},
	BuildingOffice:        {2, 2},
	BuildingFactory:       {2, 2},
	BuildingPowerPlant:    {2, 2},
	BuildingPoliceStation: {2, 2},
	BuildingFireStation:   {2, 2},
	BuildingHospital:      {3, 3},
	BuildingSchool:        {2, 2},
	BuildingUniversity:    {3, 3},
}

// SizeOf returns the footprint dimensions for a building type.
func SizeOf(t BuildingType) Size {
	if s, ok := footprintSizes[t]; ok {
		return s
	}
	return Size{1, 1}
}

// Footprint lists the cells a building of the given type occupies when
// anchored at (x, y). The origin cell is always first. Cells are not
// bounds-checked; callers filter against the grid.
func Footprint(x, y int, t BuildingType) []Cell {
	s := SizeOf(t)
	cells := make([]Cell, 0, s.W*s.H)
	for dy := 0; dy < s.H; dy++ {
		for dx := 0; dx < s.W; dx++ {
			cells = append(cells, Cell{X: x + dx, Y: y + dy})
		}
	}
	return cells
}
