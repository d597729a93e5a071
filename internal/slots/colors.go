package slots

import (
	"regexp"
	"strings"

	"github.com/deckwise/scrybe/internal/tables"
)

var (
	monoColorRe = regexp.MustCompile(`\bmono[- ]?(white|blue|black|red|green)\b`)
	colorWordRe = regexp.MustCompile(`\b(white|blue|black|red|green|colorless)\b`)
	colorListRe = regexp.MustCompile(`\b(white|blue|black|red|green)((?:(?:,\s*|\s+)(?:or|and)\s+|,\s*)(?:white|blue|black|red|green))+\b`)
)

// extractColors resolves color constraints with a fixed precedence:
// mono-color phrase, then guild/shard/wedge name, then explicit or/and
// lists, then bare color words. Guild names are Commander vocabulary and
// always mean color identity.
func extractColors(run *extraction, remaining string) string {
	if m := monoColorRe.FindStringSubmatch(remaining); m != nil {
		run.slots.Colors = &ColorConstraint{
			Values:   []string{tables.ColorNames[m[1]]},
			Mode:     ModeIdentity,
			Operator: OpExact,
		}
		return consume(remaining, m[0])
	}

	for _, mapping := range run.colorMappings {
		re := regexp.MustCompile(`(?:\b(?:in|for)\s+)?\b` + regexp.QuoteMeta(mapping.Name) + `\b(?:\s+colors?)?`)
		if loc := re.FindStringIndex(remaining); loc != nil {
			run.slots.Colors = &ColorConstraint{
				Values:   tables.SortColors(mapping.Colors),
				Mode:     ModeIdentity,
				Operator: OpWithin,
			}
			return consume(remaining, remaining[loc[0]:loc[1]])
		}
	}

	if m := colorListRe.FindString(remaining); m != "" {
		op := OpAnd
		if regexp.MustCompile(`\bor\b`).MatchString(m) {
			op = OpOr
		}
		var values []string
		for _, w := range colorWordRe.FindAllString(m, -1) {
			values = append(values, tables.ColorNames[w])
		}
		run.slots.Colors = &ColorConstraint{
			Values:   tables.SortColors(values),
			Mode:     ModeColor,
			Operator: op,
		}
		return consume(remaining, m)
	}

	// bare color words scattered through the text
	words := colorWordRe.FindAllString(remaining, -1)
	if len(words) == 0 {
		return remaining
	}
	var values []string
	for _, w := range words {
		letter := tables.ColorNames[w]
		if !containsString(values, letter) {
			values = append(values, letter)
		}
		remaining = consume(remaining, w)
	}
	op := OpInclude
	if len(values) > 1 {
		// multiple bare mentions default to "must contain all"
		op = OpAnd
	}
	run.slots.Colors = &ColorConstraint{
		Values:   tables.SortColors(values),
		Mode:     ModeColor,
		Operator: op,
	}
	return strings.TrimSpace(remaining)
}
