package slots

import (
	"regexp"
	"sort"
	"strings"

	"github.com/deckwise/scrybe/internal/normalize"
	"github.com/deckwise/scrybe/internal/tables"
)

// Extractor runs the ordered chain of sub-extractors. Construct once; every
// Extract call is independent.
type Extractor struct{}

// NewExtractor returns the default extractor chain.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// step is one link of the chain: it claims text and returns the shrunk
// remainder. Order is load-bearing: numeric extraction must never see text a
// structural extractor would have claimed ("commander" is not a number).
type step struct {
	name  string
	apply func(run *extraction, remaining string) string
}

func (e *Extractor) steps() []step {
	return []step{
		{"format", extractFormat},
		{"colors", extractColors},
		{"types", extractTypes},
		{"subtypes", extractSubtypes},
		{"mana_value", extractManaValue},
		{"power", extractPower},
		{"toughness", extractToughness},
		{"year", extractYear},
		{"price", extractPrice},
		{"rarity", extractRarity},
		{"specials", extractSpecials},
		{"negations", extractNegations},
	}
}

// extraction is the per-request state shared between steps.
type extraction struct {
	slots         *ExtractedSlots
	colorMappings []normalize.ColorMapping
}

var quotedSpanRe = regexp.MustCompile(`"[^"]+"`)

// Extract runs the full chain over a normalized query and returns the
// structured slots plus the cleaned residual.
func (e *Extractor) Extract(nq normalize.NormalizedQuery) ExtractedSlots {
	slots := ExtractedSlots{}
	run := &extraction{slots: &slots, colorMappings: nq.ColorMappings}

	remaining := nq.Normalized

	// Quoted phrases are explicit oracle-text searches; claim them before
	// any extractor can chew on their contents.
	for _, phrase := range nq.PreservedPhrases {
		slots.IncludeText = append(slots.IncludeText, phrase)
	}
	remaining = quotedSpanRe.ReplaceAllString(remaining, " ")

	for _, st := range e.steps() {
		remaining = st.apply(run, remaining)
	}

	slots.Residual = cleanResidual(remaining)
	return slots
}

// cleanResidual strips stop words and leftover punctuation from whatever no
// extractor claimed.
func cleanResidual(remaining string) string {
	remaining = strings.NewReplacer(",", " ", ".", " ", "?", " ", "!", " ").Replace(remaining)
	words := strings.Fields(remaining)
	kept := words[:0]
	for _, w := range words {
		if !tables.StopWords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// consume removes the first occurrence of span from text, leaving a single
// space so neighbouring words do not fuse.
func consume(text, span string) string {
	idx := strings.Index(text, span)
	if idx < 0 {
		return text
	}
	return strings.TrimSpace(text[:idx] + " " + text[idx+len(span):])
}

func extractFormat(run *extraction, remaining string) string {
	names := make([]string, 0, len(tables.FormatAliases))
	for name := range tables.FormatAliases {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	for _, name := range names {
		re := regexp.MustCompile(`(?:\b(?:for|in)\s+)?\b` + regexp.QuoteMeta(name) + `\b(?:\s+(?:format|legal|decks?))?`)
		if loc := re.FindStringIndex(remaining); loc != nil {
			run.slots.Format = tables.FormatAliases[name]
			return consume(remaining, remaining[loc[0]:loc[1]])
		}
	}
	return remaining
}

var rarityKeys = func() []string {
	keys := make([]string, 0, len(tables.RarityAliases))
	for k := range tables.RarityAliases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return keys
}()

func extractRarity(run *extraction, remaining string) string {
	for _, name := range rarityKeys {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
		if m := re.FindString(remaining); m != "" {
			run.slots.Rarity = tables.RarityAliases[name]
			return consume(remaining, m)
		}
	}
	return remaining
}

func extractSpecials(run *extraction, remaining string) string {
	names := make([]string, 0, len(tables.SpecialTraits))
	for k := range tables.SpecialTraits {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	for _, name := range names {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
		if m := re.FindString(remaining); m != "" {
			trait := tables.SpecialTraits[name]
			if !containsString(run.slots.Specials, trait) {
				run.slots.Specials = append(run.slots.Specials, trait)
			}
			remaining = consume(remaining, m)
		}
	}
	return remaining
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
