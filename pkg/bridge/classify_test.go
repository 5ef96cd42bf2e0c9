package bridge

import (
	"math/rand"
	"testing"

	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
)

func TestTierForSpanDeterministicWindows(t *testing.T) {
	c := NewClassifier(nil, rand.New(rand.NewSource(1)))
	cases := []struct {
		span int
		want Tier
	}{
		{1, TierWood},
		{2, TierWood},
		{4, TierStone},
		{6, TierBrick},
		{9, TierTruss},
		{12, TierArch},
		{15, TierCantilever},
		{18, TierCableStayed},
		{22, TierSuspension},
		{24, TierSuspension},
	}
	for _, tc := range cases {
		if got := c.TierForSpan(tc.span); got != tc.want {
			t.Errorf("TierForSpan(%d) = %v, want %v", tc.span, got, tc.want)
		}
	}
}

func TestTierForSpanOverlapPicksEitherNeighbor(t *testing.T) {
	// Span 3 sits on the wood/stone boundary. Over many seeded rolls both
	// tiers must appear and nothing else.
	c := NewClassifier(nil, rand.New(rand.NewSource(42)))
	seen := map[Tier]int{}
	for i := 0; i < 200; i++ {
		seen[c.TierForSpan(3)]++
	}
	if len(seen) != 2 {
		t.Fatalf("overlap span chose %d distinct tiers, want 2: %v", len(seen), seen)
	}
	if seen[TierWood] == 0 || seen[TierStone] == 0 {
		t.Errorf("overlap span should mix wood and stone, got %v", seen)
	}
}

func TestTierForSpanOutsideTable(t *testing.T) {
	c := NewClassifier(nil, rand.New(rand.NewSource(1)))
	if got := c.TierForSpan(0); got != TierWood {
		t.Errorf("below-floor span = %v, want wood", got)
	}
	if got := c.TierForSpan(99); got != TierSuspension {
		t.Errorf("above-ceiling span = %v, want suspension", got)
	}
}

func TestClassifyFillsEverything(t *testing.T) {
	c := NewClassifier(nil, rand.New(rand.NewSource(7)))
	info := c.Classify(4, 2, OrientNS, Options{})
	if info.BridgeID == "" {
		t.Error("bridge id should be generated")
	}
	if info.BridgeType != "stone" {
		t.Errorf("span 4 should classify as stone, got %s", info.BridgeType)
	}
	if info.Span != 4 || info.Position != 2 || info.Orientation != "ns" {
		t.Errorf("span/position/orientation not carried through: %+v", info)
	}
	if info.Variant < 0 || info.Variant >= VariantCount {
		t.Errorf("variant %d outside [0,%d)", info.Variant, VariantCount)
	}
	if info.Height != 1 {
		t.Errorf("stone height = %d, want 1", info.Height)
	}
}

func TestClassifyHonorsPins(t *testing.T) {
	c := NewClassifier(nil, rand.New(rand.NewSource(7)))
	tier := TierSuspension
	variant := 2
	info := c.Classify(4, 0, OrientEW, Options{
		BridgeID: "keep-me",
		Tier:     &tier,
		Variant:  &variant,
	})
	if info.BridgeID != "keep-me" {
		t.Errorf("pinned id dropped: %s", info.BridgeID)
	}
	if info.BridgeType != "suspension" || info.Height != 5 {
		t.Errorf("pinned tier dropped: %+v", info)
	}
	if info.Variant != 2 {
		t.Errorf("pinned variant dropped: %d", info.Variant)
	}
}

func TestApplyStampsEveryDeckTile(t *testing.T) {
	g := grid.New(20)
	for x := 10; x <= 12; x++ {
		g.Tiles[5][x].Building.Type = grid.BuildingWater
	}
	det := DetectSpan(g, 9, 5, 13, 5)
	if det == nil {
		t.Fatal("detection failed")
	}

	c := NewClassifier(nil, rand.New(rand.NewSource(3)))
	info := c.Classify(det.Span, 0, det.Orientation, Options{})
	Apply(g, det, info, grid.BuildingRoadBridge)

	for i, cell := range det.Tiles {
		b := g.Tiles[cell.Y][cell.X].Building
		if b.Type != grid.BuildingRoadBridge {
			t.Errorf("deck tile %d is %s, want road_bridge", i, b.Type)
		}
		if b.BridgeInfo == nil {
			t.Fatalf("deck tile %d has no bridge info", i)
		}
		if b.BridgeInfo.Position != i {
			t.Errorf("deck tile %d has position %d", i, b.BridgeInfo.Position)
		}
		if b.BridgeInfo.BridgeID != info.BridgeID ||
			b.BridgeInfo.BridgeType != info.BridgeType ||
			b.BridgeInfo.Span != info.Span ||
			b.BridgeInfo.Orientation != info.Orientation ||
			b.BridgeInfo.Height != info.Height {
			t.Errorf("deck tile %d does not share bridge identity: %+v", i, b.BridgeInfo)
		}
	}
	// Banks stay dry land.
	if g.Tiles[5][9].Building.Type != grid.BuildingNone {
		t.Error("near bank should be untouched")
	}
	if g.Tiles[5][13].Building.Type != grid.BuildingNone {
		t.Error("far bank should be untouched")
	}
}
