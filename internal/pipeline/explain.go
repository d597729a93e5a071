package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deckwise/scrybe/internal/concepts"
	"github.com/deckwise/scrybe/internal/slots"
	"github.com/deckwise/scrybe/internal/tables"
)

// buildExplanation renders one human-readable line from whatever structure
// was recognized, falling back to echoing the original text.
func buildExplanation(s *slots.ExtractedSlots, matches []concepts.Match, original string) string {
	var parts []string

	if s.Colors != nil && len(s.Colors.Values) > 0 {
		parts = append(parts, colorPhrase(s.Colors))
	}
	if len(s.Types.Include) > 0 {
		parts = append(parts, strings.Join(s.Types.Include, " ")+" cards")
	} else if len(s.Types.IncludeOr) > 0 {
		parts = append(parts, strings.Join(s.Types.IncludeOr, " or ")+" cards")
	}
	for _, m := range matches {
		if m.Description != "" {
			parts = append(parts, m.Description)
		}
	}
	if s.Format != "" {
		parts = append(parts, "legal in "+s.Format)
	}
	if s.Price != nil {
		parts = append(parts, priceWords(s.Price))
	}
	if s.ManaValue != nil {
		parts = append(parts, "mana value "+s.ManaValue.Op+formatNumber(s.ManaValue.Value))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("searching card text for %q", original)
	}
	return "searching for " + strings.Join(parts, ", ")
}

func colorPhrase(c *slots.ColorConstraint) string {
	names := make([]string, 0, len(c.Values))
	for _, letter := range tables.SortColors(c.Values) {
		names = append(names, colorName(letter))
	}
	sep := " and "
	if c.Operator == slots.OpOr {
		sep = " or "
	}
	phrase := strings.Join(names, sep)
	if c.Operator == slots.OpExact {
		phrase = "mono-" + phrase
	}
	return phrase
}

func colorName(letter string) string {
	for name, l := range tables.ColorNames {
		if l == letter {
			return name
		}
	}
	return letter
}

func priceWords(p *slots.NumericConstraint) string {
	switch p.Op {
	case "<", "<=":
		return "under $" + formatNumber(p.Value)
	case ">", ">=":
		return "over $" + formatNumber(p.Value)
	default:
		return "$" + formatNumber(p.Value)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
