package grid

// Grid is the dense N×N tile container. Tiles are indexed [y][x]. Tiles are
// never destroyed; a removed building reverts its type to BuildingNone.
type Grid struct {
	Size  int      `json:"size"`
	Tiles [][]Tile `json:"tiles"`
}

// New creates an empty grass-filled grid of the given size.
func New(size int) *Grid {
	g := &Grid{
		Size:  size,
		Tiles: make([][]Tile, size),
	}
	for y := 0; y < size; y++ {
		g.Tiles[y] = make([]Tile, size)
		for x := 0; x < size; x++ {
			g.Tiles[y][x] = Tile{X: x, Y: y, Building: Building{Type: BuildingNone}}
		}
	}
	return g
}

// InBounds reports whether (x, y) is a valid tile coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Size && y < g.Size
}

// At returns the tile at (x, y), or nil when the coordinate is out of range.
func (g *Grid) At(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.Tiles[y][x]
}

// TypeAt returns the building type at (x, y). Out-of-range coordinates read
// as grass, never as a fault.
func (g *Grid) TypeAt(x, y int) BuildingType {
	if !g.InBounds(x, y) {
		return BuildingNone
	}
	return g.Tiles[y][x].Building.Type
}

// IsRoad reports whether a building type carries road traffic. Bridge decks
// count: a deck tile is road surface for every connectivity scan.
func IsRoad(t BuildingType) bool {
	return t == BuildingRoad || t == BuildingRoadBridge
}

// IsWater reports whether a building type is open water.
func IsWater(t BuildingType) bool {
	return t == BuildingWater
}

// Place writes a building footprint anchored at (x, y): the real type on the
// origin tile, occupied markers on the rest. It returns false without
// mutating anything when the footprint falls outside the grid or overlaps
// something other than grass — callers detect rejection by the return value,
// not by an error.
func (g *Grid) Place(x, y int, typ BuildingType) bool {
	cells := Footprint(x, y, typ)
	for _, c := range cells {
		if !g.InBounds(c.X, c.Y) {
			return false
		}
		if g.Tiles[c.Y][c.X].Building.Type != BuildingNone {
			return false
		}
	}
	for i, c := range cells {
		t := BuildingOccupied
		if i == 0 {
			t = typ
		}
		g.Tiles[c.Y][c.X].Building = Building{Type: t, ConstructionProgress: 100}
	}
	return true
}

// Bulldoze reverts the building anchored at (x, y) to grass, including its
// occupied footprint cells. No-op on grass, water, or a non-origin cell.
func (g *Grid) Bulldoze(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	typ := g.Tiles[y][x].Building.Type
	if typ == BuildingNone || typ == BuildingWater || typ == BuildingOccupied {
		return false
	}
	for _, c := range Footprint(x, y, typ) {
		if g.InBounds(c.X, c.Y) {
			g.Tiles[c.Y][c.X].Building = Building{Type: BuildingNone}
		}
	}
	return true
}
