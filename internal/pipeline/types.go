// Package pipeline sequences the full translation: normalize, classify,
// extract, match concepts, assemble, merge with the fast path, resolve
// conflicts, and optionally validate against the search backend.
package pipeline

import (
	"time"

	"github.com/deckwise/scrybe/internal/assemble"
	"github.com/deckwise/scrybe/internal/concepts"
	"github.com/deckwise/scrybe/internal/intent"
	"github.com/deckwise/scrybe/internal/normalize"
	"github.com/deckwise/scrybe/internal/scryfall"
	"github.com/deckwise/scrybe/internal/slots"
)

// Sources of the final query.
const (
	SourceDeterministic = "deterministic"
	SourceConceptMatch  = "concept_match"
	SourceAI            = "ai"
	SourceFallback      = "fallback"
)

// Options tune one pipeline run. Zero values mean "use the default"; the
// repair and broadening toggles are pointers so that an omitted field and an
// explicit false stay distinguishable (both default to on). See
// DefaultOptions.
type Options struct {
	ValidateWithScryfall bool    `json:"validateWithScryfall"`
	MaxConcepts          int     `json:"maxConcepts"`
	ConceptThreshold     float64 `json:"conceptThreshold"`
	OverlyBroadThreshold int     `json:"overlyBroadThreshold"`
	EnableRepair         *bool   `json:"enableRepair,omitempty"`
	EnableBroadening     *bool   `json:"enableBroadening,omitempty"`
	MaxQueryLength       int     `json:"maxQueryLength"`
	Debug                bool    `json:"debug"`
}

// Bool returns a pointer for the optional Options toggles.
func Bool(b bool) *bool {
	return &b
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ValidateWithScryfall: false,
		MaxConcepts:          5,
		ConceptThreshold:     0.7,
		OverlyBroadThreshold: 1500,
		EnableRepair:         Bool(true),
		EnableBroadening:     Bool(true),
		MaxQueryLength:       assemble.DefaultMaxQueryLength,
	}
}

// normalized fills in defaults for omitted fields so a literal Options
// value behaves like DefaultOptions.
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.MaxConcepts == 0 {
		o.MaxConcepts = d.MaxConcepts
	}
	if o.ConceptThreshold == 0 {
		o.ConceptThreshold = d.ConceptThreshold
	}
	if o.OverlyBroadThreshold == 0 {
		o.OverlyBroadThreshold = d.OverlyBroadThreshold
	}
	if o.MaxQueryLength == 0 {
		o.MaxQueryLength = d.MaxQueryLength
	}
	if o.EnableRepair == nil {
		o.EnableRepair = d.EnableRepair
	}
	if o.EnableBroadening == nil {
		o.EnableBroadening = d.EnableBroadening
	}
	return o
}

func (o Options) repairEnabled() bool {
	return o.EnableRepair != nil && *o.EnableRepair
}

func (o Options) broadeningEnabled() bool {
	return o.EnableBroadening != nil && *o.EnableBroadening
}

// Context carries per-request metadata and the caller's deck filters.
type Context struct {
	RequestID string           `json:"requestId"`
	StartTime time.Time        `json:"startTime"`
	Options   Options          `json:"options"`
	Filters   assemble.Filters `json:"filters"`
}

// Explanation is the human-readable account of what the pipeline decided.
type Explanation struct {
	Readable    string   `json:"readable"`
	Assumptions []string `json:"assumptions,omitempty"`
	Confidence  float64  `json:"confidence"`
}

// Result is everything one run produced, including intermediate stage
// outputs for debugging and the UI.
type Result struct {
	RequestID      string                      `json:"requestId,omitempty"`
	Original       string                      `json:"original"`
	Normalized     normalize.NormalizedQuery   `json:"normalized"`
	Intent         intent.ClassifiedIntent     `json:"intent"`
	Slots          slots.ExtractedSlots        `json:"slots"`
	Concepts       []concepts.Match            `json:"concepts,omitempty"`
	FastPath       FastPathResult              `json:"fastPath"`
	Assembled      assemble.Assembled          `json:"assembled"`
	Conflicts      assemble.ConflictResult     `json:"conflicts"`
	FinalQuery     string                      `json:"finalQuery"`
	Source         string                      `json:"source"`
	Explanation    Explanation                 `json:"explanation"`
	Validation     *scryfall.ValidationResult  `json:"validation,omitempty"`
	Repair         *scryfall.RepairResult      `json:"repair,omitempty"`
	Broaden        *scryfall.BroadenResult     `json:"broaden,omitempty"`
	ResponseTimeMs int64                       `json:"responseTimeMs"`
}
