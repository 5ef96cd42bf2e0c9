// Package save serializes the topology-relevant game state. Only non-grass
// tiles are written; the document round-trips bridge metadata and the
// grandfathering flag byte-for-byte, and Decode applies the one migration
// rule older saves need.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/ericmatamoros/isometric-city-sub000/pkg/access"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
)

// FormatVersion is the current save document version.
const FormatVersion = 2

// Document is the serialized grid.
type Document struct {
	Version int          `json:"version"`
	Size    int          `json:"size"`
	Tiles   []TileRecord `json:"tiles"`
}

// TileRecord is one serialized non-grass tile.
type TileRecord struct {
	X         int             `json:"x"`
	Y         int             `json:"y"`
	Zone      grid.ZoneType   `json:"zone,omitempty"`
	Building  *BuildingRecord `json:"building,omitempty"`
	LandValue float64         `json:"landValue,omitempty"`
	Pollution float64         `json:"pollution,omitempty"`
	Crime     float64         `json:"crime,omitempty"`
	Traffic   float64         `json:"traffic,omitempty"`
	Subway    bool            `json:"subway,omitempty"`
}

// BuildingRecord mirrors grid.Building with the grandfathering flag as a
// pointer, so a record written before the road-access rule existed is
// distinguishable from an explicit false.
type BuildingRecord struct {
	Type                    grid.BuildingType `json:"type"`
	Level                   int               `json:"level,omitempty"`
	Population              int               `json:"population,omitempty"`
	Jobs                    int               `json:"jobs,omitempty"`
	Powered                 bool              `json:"powered,omitempty"`
	Watered                 bool              `json:"watered,omitempty"`
	OnFire                  bool              `json:"onFire,omitempty"`
	FireProgress            int               `json:"fireProgress,omitempty"`
	Age                     int               `json:"age,omitempty"`
	ConstructionProgress    int               `json:"constructionProgress"`
	Abandoned               bool              `json:"abandoned,omitempty"`
	OwnerID                 string            `json:"ownerId,omitempty"`
	ForSale                 bool              `json:"forSale,omitempty"`
	Price                   int               `json:"price,omitempty"`
	GrandfatheredRoadAccess *bool             `json:"grandfatheredRoadAccess,omitempty"`
	BridgeInfo              *grid.BridgeInfo  `json:"bridgeInfo,omitempty"`
}

// Encode serializes a grid. Service buildings always carry an explicit
// grandfathering flag so the next Decode never re-migrates them.
func Encode(g *grid.Grid) ([]byte, error) {
	doc := Document{Version: FormatVersion, Size: g.Size}
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			t := g.Tiles[y][x]
			if t.Building.Type == grid.BuildingNone && t.Zone == grid.ZoneNone &&
				t.LandValue == 0 && t.Pollution == 0 && t.Crime == 0 && t.Traffic == 0 && !t.Subway {
				continue
			}
			rec := TileRecord{
				X: x, Y: y,
				Zone:      t.Zone,
				LandValue: t.LandValue,
				Pollution: t.Pollution,
				Crime:     t.Crime,
				Traffic:   t.Traffic,
				Subway:    t.Subway,
			}
			if t.Building.Type != grid.BuildingNone {
				rec.Building = encodeBuilding(t.Building)
			}
			doc.Tiles = append(doc.Tiles, rec)
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

func encodeBuilding(b grid.Building) *BuildingRecord {
	rec := &BuildingRecord{
		Type:                 b.Type,
		Level:                b.Level,
		Population:           b.Population,
		Jobs:                 b.Jobs,
		Powered:              b.Powered,
		Watered:              b.Watered,
		OnFire:               b.OnFire,
		FireProgress:         b.FireProgress,
		Age:                  b.Age,
		ConstructionProgress: b.ConstructionProgress,
		Abandoned:            b.Abandoned,
		OwnerID:              b.OwnerID,
		ForSale:              b.ForSale,
		Price:                b.Price,
		BridgeInfo:           b.BridgeInfo,
	}
	if access.RequiresRoad(b.Type) {
		v := b.GrandfatheredRoadAccess
		rec.GrandfatheredRoadAccess = &v
	}
	return rec
}

// Decode deserializes a document into a grid, applying the load-time
// migration rule: a service building whose record predates the road-access
// field loads grandfathered, so older cities are never retroactively
// invalidated by the connectivity rule.
func Decode(data []byte) (*grid.Grid, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing save document: %w", err)
	}
	if doc.Size <= 0 {
		return nil, fmt.Errorf("save document has invalid size %d", doc.Size)
	}

	g := grid.New(doc.Size)
	for _, rec := range doc.Tiles {
		t := g.At(rec.X, rec.Y)
		if t == nil {
			return nil, fmt.Errorf("save document tile (%d,%d) is outside the %d×%d grid", rec.X, rec.Y, doc.Size, doc.Size)
		}
		t.Zone = rec.Zone
		t.LandValue = rec.LandValue
		t.Pollution = rec.Pollution
		t.Crime = rec.Crime
		t.Traffic = rec.Traffic
		t.Subway = rec.Subway
		if rec.Building != nil {
			t.Building = decodeBuilding(rec.Building)
		}
	}
	return g, nil
}

func decodeBuilding(rec *BuildingRecord) grid.Building {
	b := grid.Building{
		Type:                 rec.Type,
		Level:                rec.Level,
		Population:           rec.Population,
		Jobs:                 rec.Jobs,
		Powered:              rec.Powered,
		Watered:              rec.Watered,
		OnFire:               rec.OnFire,
		FireProgress:         rec.FireProgress,
		Age:                  rec.Age,
		ConstructionProgress: rec.ConstructionProgress,
		Abandoned:            rec.Abandoned,
		OwnerID:              rec.OwnerID,
		ForSale:              rec.ForSale,
		Price:                rec.Price,
		BridgeInfo:           rec.BridgeInfo,
	}
	switch {
	case rec.GrandfatheredRoadAccess != nil:
		b.GrandfatheredRoadAccess = *rec.GrandfatheredRoadAccess
	case access.RequiresRoad(rec.Type):
		b.GrandfatheredRoadAccess = true
	}
	return b
}
