package bridge

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
)

// Roller supplies the randomness behind overlap tie-breaks and cosmetic
// variants. *rand.Rand satisfies it; tests seed their own.
type Roller interface {
	Intn(n int) int
}

// Classifier resolves detected spans into deck metadata against a tier
// table.
type Classifier struct {
	tiers []TierSpec
	roll  Roller
}

// NewClassifier builds a classifier over the given tier table, or the
// built-in table when tiers is nil. A nil roller falls back to the global
// math/rand source.
func NewClassifier(tiers []TierSpec, roll Roller) *Classifier {
	if tiers == nil {
		tiers = DefaultTiers()
	}
	if roll == nil {
		roll = globalRoller{}
	}
	return &Classifier{tiers: tiers, roll: roll}
}

type globalRoller struct{}

func (globalRoller) Intn(n int) int { return rand.Intn(n) }

// TierForSpan picks the construction tier for a span. Windows overlap at
// shared boundaries; a span inside an overlap picks between the candidates
// uniformly at random, everything else is deterministic. Spans below the
// table floor build the lowest tier, spans above the ceiling the highest.
func (c *Classifier) TierForSpan(span int) Tier {
	var candidates []Tier
	for i, t := range c.tiers {
		if span >= t.MinSpan && span <= t.MaxSpan {
			candidates = append(candidates, Tier(i))
		}
	}
	switch len(candidates) {
	case 0:
		if span < c.tiers[0].MinSpan {
			return TierWood
		}
		return Tier(len(c.tiers) - 1)
	case 1:
		return candidates[0]
	}
	return candidates[c.roll.Intn(len(candidates))]
}

// Spec returns the tier table row for a tier.
func (c *Classifier) Spec(t Tier) TierSpec {
	return c.tiers[t]
}

// Options pins Classify outputs the caller already knows — re-stamping an
// existing bridge keeps its identity. Nil fields mean "choose".
type Options struct {
	BridgeID string
	Tier     *Tier
	Variant  *int
}

// Classify produces the deck metadata for one tile of a detected span. The
// tier is chosen by TierForSpan unless pinned; variant and bridge id are
// likewise chosen fresh when absent.
func (c *Classifier) Classify(span, position int, orient Orientation, opt Options) grid.BridgeInfo {
	tier := c.TierForSpan(span)
	if opt.Tier != nil {
		tier = *opt.Tier
	}
	variant := c.roll.Intn(VariantCount)
	if opt.Variant != nil {
		variant = *opt.Variant
	}
	id := opt.BridgeID
	if id == "" {
		id = uuid.NewString()
	}
	spec := c.tiers[tier]
	return grid.BridgeInfo{
		BridgeID:    id,
		BridgeType:  spec.Name,
		Variant:     variant,
		Span:        span,
		Position:    position,
		Orientation: string(orient),
		Height:      spec.Height,
	}
}

// Apply writes a classified bridge onto every tile of a detection: shared
// id, type, span, orientation and height, tile-specific position, and the
// bridge-bearing deck type in place of water. The info argument is the
// position-0 classification; deck is road_bridge or rail_bridge.
func Apply(g *grid.Grid, det *Detection, info grid.BridgeInfo, deck grid.BuildingType) {
	for i, c := range det.Tiles {
		t := g.At(c.X, c.Y)
		if t == nil {
			continue
		}
		tileInfo := info
		tileInfo.Position = i
		t.Building = grid.Building{
			Type:                 deck,
			ConstructionProgress: 100,
			BridgeInfo:           &tileInfo,
		}
	}
}
