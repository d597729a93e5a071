// Package slots extracts structured constraints (format, colors, types,
// numerics, rarity, negations) from normalized text. Extractors run in a
// fixed order, each consuming the text it claims; whatever survives the
// whole chain becomes the residual handed to concept matching.
package slots

// Color constraint modes and operators.
const (
	ModeIdentity = "identity"
	ModeColor    = "color"

	OpOr      = "or"
	OpAnd     = "and"
	OpExact   = "exact"
	OpWithin  = "within"
	OpInclude = "include"
)

// NumericConstraint is one comparison against a numeric dimension.
type NumericConstraint struct {
	Op    string  `json:"op"`
	Value float64 `json:"value"`
}

// ColorConstraint captures which colors were asked for and how strictly.
type ColorConstraint struct {
	Values   []string `json:"values"`
	Mode     string   `json:"mode"`
	Operator string   `json:"operator"`
}

// TypeConstraint holds the three type buckets. A type may appear in at most
// one of them.
type TypeConstraint struct {
	Include   []string `json:"include"`
	IncludeOr []string `json:"includeOr"`
	Exclude   []string `json:"exclude"`
}

// Has reports whether t already claims typ in any bucket.
func (t *TypeConstraint) Has(typ string) bool {
	for _, x := range t.Include {
		if x == typ {
			return true
		}
	}
	for _, x := range t.IncludeOr {
		if x == typ {
			return true
		}
	}
	for _, x := range t.Exclude {
		if x == typ {
			return true
		}
	}
	return false
}

// ExtractedSlots is the structured constraint bag produced by one pass of
// the extractor chain.
type ExtractedSlots struct {
	Format      string             `json:"format,omitempty"`
	Colors      *ColorConstraint   `json:"colors,omitempty"`
	Types       TypeConstraint     `json:"types"`
	Subtypes    []string           `json:"subtypes,omitempty"`
	ManaValue   *NumericConstraint `json:"mv,omitempty"`
	Power       *NumericConstraint `json:"power,omitempty"`
	Toughness   *NumericConstraint `json:"toughness,omitempty"`
	Year        *NumericConstraint `json:"year,omitempty"`
	Price       *NumericConstraint `json:"price,omitempty"`
	Rarity      string             `json:"rarity,omitempty"`
	IncludeText []string           `json:"includeText,omitempty"`
	ExcludeText []string           `json:"excludeText,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Specials    []string           `json:"specials,omitempty"`
	Residual    string             `json:"residual"`
}

// Empty reports whether the chain claimed nothing at all.
func (s *ExtractedSlots) Empty() bool {
	return s.Format == "" && s.Colors == nil &&
		len(s.Types.Include) == 0 && len(s.Types.IncludeOr) == 0 && len(s.Types.Exclude) == 0 &&
		len(s.Subtypes) == 0 && s.ManaValue == nil && s.Power == nil &&
		s.Toughness == nil && s.Year == nil && s.Price == nil &&
		s.Rarity == "" && len(s.IncludeText) == 0 && len(s.ExcludeText) == 0 &&
		len(s.Tags) == 0 && len(s.Specials) == 0
}
