package bridge

// Tier identifies one of the eight bridge construction classes, ascending by
// span capacity.
type Tier int

const (
	TierWood Tier = iota
	TierStone
	TierBrick
	TierTruss
	TierArch
	TierCantilever
	TierCableStayed
	TierSuspension
)

// TierSpec is one row of the visual/structural tier table. Span windows
// overlap at their shared boundary: a span equal to one tier's max and the
// next tier's min may be built as either.
type TierSpec struct {
	Name      string `yaml:"name" json:"name"`
	MinSpan   int    `yaml:"min_span" json:"min_span"`
	MaxSpan   int    `yaml:"max_span" json:"max_span"`
	Height    int    `yaml:"height" json:"height"`
	DeckColor string `yaml:"deck_color" json:"deck_color"`
	Accent    string `yaml:"accent_color" json:"accent_color"`
	Support   string `yaml:"support_color" json:"support_color"`
}

// DefaultTiers is the built-in tier table.
func DefaultTiers() []TierSpec {
	return []TierSpec{
		{Name: "wood", MinSpan: 1, MaxSpan: 3, Height: 1, DeckColor: "#8b6f47", Accent: "#6e5738", Support: "#4f3e27"},
		{Name: "stone", MinSpan: 3, MaxSpan: 5, Height: 1, DeckColor: "#9a9a94", Accent: "#7d7d78", Support: "#5c5c58"},
		{Name: "brick", MinSpan: 5, MaxSpan: 8, Height: 2, DeckColor: "#a8543a", Accent: "#8c4530", Support: "#6b3424"},
		{Name: "truss", MinSpan: 8, MaxSpan: 11, Height: 2, DeckColor: "#606a72", Accent: "#4c545b", Support: "#373d42"},
		{Name: "arch", MinSpan: 11, MaxSpan: 14, Height: 3, DeckColor: "#b0b4b8", Accent: "#90959a", Support: "#6d7277"},
		{Name: "cantilever", MinSpan: 14, MaxSpan: 17, Height: 3, DeckColor: "#7a6f5d", Accent: "#625948", Support: "#494235"},
		{Name: "cable_stayed", MinSpan: 17, MaxSpan: 20, Height: 4, DeckColor: "#c9cdd1", Accent: "#a7abaf", Support: "#84888c"},
		{Name: "suspension", MinSpan: 20, MaxSpan: 24, Height: 5, DeckColor: "#b5492f", Accent: "#953c27", Support: "#712d1d"},
	}
}

// VariantCount is how many cosmetic variants each tier has.
const VariantCount = 3
