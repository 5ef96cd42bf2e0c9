package grid

// BuildingType identifies what occupies a tile. Multi-tile buildings carry
// their real type only on the origin tile; the rest of the footprint is
// marked BuildingOccupied.
type BuildingType string

const (
	BuildingNone     BuildingType = "grass"
	BuildingOccupied BuildingType = "occupied"
	BuildingWater    BuildingType = "water"
	BuildingTree     BuildingType = "tree"

	BuildingRoad       BuildingType = "road"
	BuildingRail       BuildingType = "rail"
	BuildingRoadBridge BuildingType = "road_bridge"
	BuildingRailBridge BuildingType = "rail_bridge"

	BuildingHouse     BuildingType = "house"
	BuildingApartment BuildingType = "apartment"
	BuildingShop      BuildingType = "shop"
	BuildingOffice    BuildingType = "office"
	BuildingFactory   BuildingType = "factory"

	BuildingPowerPlant    BuildingType = "power_plant"
	BuildingWaterTower    BuildingType = "water_tower"
	BuildingPoliceStation BuildingType = "police_station"
	BuildingFireStation   BuildingType = "fire_station"
	BuildingHospital      BuildingType = "hospital"
	BuildingSchool        BuildingType = "school"
	BuildingUniversity    BuildingType = "university"
)

// ZoneType identifies the zoning painted on a tile, independent of what is
// built there.
type ZoneType string

const (
	ZoneNone        ZoneType = ""
	ZoneResidential ZoneType = "residential"
	ZoneCommercial  ZoneType = "commercial"
	ZoneIndustrial  ZoneType = "industrial"
)

// BridgeInfo is the deck metadata attached to every tile of a bridge. All
// tiles of one bridge share BridgeID, BridgeType, Span, Orientation and
// Height; Position is this tile's zero-based index along the deck.
type BridgeInfo struct {
	BridgeID    string `json:"bridgeId"`
	BridgeType  string `json:"bridgeType"`
	Variant     int    `json:"variant"`
	Span        int    `json:"span"`
	Position    int    `json:"position"`
	Orientation string `json:"orientation"`
	Height      int    `json:"height"`
}

// Building is everything built on a tile. Powered and Watered are outputs of
// the coverage pass; the economic fields (Level, Population, Jobs) belong to
// the simulation tick and are carried here untouched.
type Building struct {
	Type                 BuildingType `json:"type"`
	Level                int          `json:"level,omitempty"`
	Population           int          `json:"population,omitempty"`
	Jobs                 int          `json:"jobs,omitempty"`
	Powered              bool         `json:"powered,omitempty"`
	Watered              bool         `json:"watered,omitempty"`
	OnFire               bool         `json:"onFire,omitempty"`
	FireProgress         int          `json:"fireProgress,omitempty"`
	Age                  int          `json:"age,omitempty"`
	ConstructionProgress int          `json:"constructionProgress"`
	Abandoned            bool         `json:"abandoned,omitempty"`

	OwnerID string `json:"ownerId,omitempty"`
	ForSale bool   `json:"forSale,omitempty"`
	Price   int    `json:"price,omitempty"`

	// GrandfatheredRoadAccess permanently exempts a service building that
	// predates the road-access rule. Set once at load time, never
	// re-evaluated.
	GrandfatheredRoadAccess bool `json:"grandfatheredRoadAccess,omitempty"`

	BridgeInfo *BridgeInfo `json:"bridgeInfo,omitempty"`
}

// Tile is one cell of the city grid.
type Tile struct {
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Zone      ZoneType `json:"zone,omitempty"`
	Building  Building `json:"building"`
	LandValue float64  `json:"landValue,omitempty"`
	Pollution float64  `json:"pollution,omitempty"`
	Crime     float64  `json:"crime,omitempty"`
	Traffic   float64  `json:"traffic,omitempty"`
	Subway    bool     `json:"subway,omitempty"`
}

// Cell is a bare grid coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}
