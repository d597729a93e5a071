package slots

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/deckwise/scrybe/internal/tables"
)

// numericPatterns builds the surface forms one quantity can take. Each
// pattern yields (op, value); the first match wins and its span is claimed.
type numericPattern struct {
	re *regexp.Regexp
	// op is fixed for the pattern unless empty, in which case capture group
	// 1 holds the operator and group 2 the value.
	op string
}

func unitPatterns(units ...string) []numericPattern {
	alt := strings.Join(units, "|")
	return []numericPattern{
		// operator attached: "mana value<=3", "power >= 4"
		{re: regexp.MustCompile(`\b(?:` + alt + `)\s*(<=|>=|<|>|=)\s*(\d+(?:\.\d+)?)`)},
		// "power 4 or less" (survives when normalization didn't rewrite)
		{re: regexp.MustCompile(`\b(?:` + alt + `)\s+(?:of\s+)?(\d+(?:\.\d+)?)\s+or\s+less\b`), op: "<="},
		{re: regexp.MustCompile(`\b(?:` + alt + `)\s+(?:of\s+)?(\d+(?:\.\d+)?)\s+or\s+more\b`), op: ">="},
		// bare number after the unit word: "power 4"
		{re: regexp.MustCompile(`\b(?:` + alt + `)\s+(?:of\s+|is\s+)?(\d+(?:\.\d+)?)\b`), op: "="},
		// bare number before the unit word: "4 power", "3 mana"
		{re: regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s+(?:` + alt + `)\b`), op: "="},
	}
}

var (
	manaValuePatterns = unitPatterns("mana value", "mana")
	powerPatterns     = unitPatterns("power", "pow")
	toughnessPatterns = unitPatterns("toughness", "tou")

	yearOpRe     = regexp.MustCompile(`\byear\s*(<=|>=|<|>|=)\s*(\d{4})`)
	yearFromRe   = regexp.MustCompile(`\b(?:from|printed in|released in)\s+(\d{4})\b`)
	yearBeforeRe = regexp.MustCompile(`\b(?:before|pre)\s+(\d{4})\b`)
	yearAfterRe  = regexp.MustCompile(`\b(?:after|since)\s+(\d{4})\b`)

	priceOpRe = regexp.MustCompile(`\busd\s*(<=|>=|<|>|=)\s*(\d+(?:\.\d+)?)`)
)

func matchNumeric(patterns []numericPattern, remaining string) (*NumericConstraint, string) {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(remaining)
		if m == nil {
			continue
		}
		var op, raw string
		if p.op == "" {
			op, raw = m[1], m[2]
		} else {
			op, raw = p.op, m[1]
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		return &NumericConstraint{Op: op, Value: value}, consume(remaining, m[0])
	}
	return nil, remaining
}

func extractManaValue(run *extraction, remaining string) string {
	if run.slots.ManaValue != nil {
		return remaining
	}
	nc, rest := matchNumeric(manaValuePatterns, remaining)
	run.slots.ManaValue = nc
	return rest
}

func extractPower(run *extraction, remaining string) string {
	nc, rest := matchNumeric(powerPatterns, remaining)
	run.slots.Power = nc
	return rest
}

func extractToughness(run *extraction, remaining string) string {
	nc, rest := matchNumeric(toughnessPatterns, remaining)
	run.slots.Toughness = nc
	return rest
}

func extractYear(run *extraction, remaining string) string {
	if m := yearOpRe.FindStringSubmatch(remaining); m != nil {
		v, _ := strconv.ParseFloat(m[2], 64)
		run.slots.Year = &NumericConstraint{Op: m[1], Value: v}
		return consume(remaining, m[0])
	}
	if m := yearFromRe.FindStringSubmatch(remaining); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		run.slots.Year = &NumericConstraint{Op: "=", Value: v}
		return consume(remaining, m[0])
	}
	if m := yearBeforeRe.FindStringSubmatch(remaining); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		run.slots.Year = &NumericConstraint{Op: "<", Value: v}
		return consume(remaining, m[0])
	}
	if m := yearAfterRe.FindStringSubmatch(remaining); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		run.slots.Year = &NumericConstraint{Op: ">", Value: v}
		return consume(remaining, m[0])
	}
	return remaining
}

// extractPrice prefers an explicit usd comparison (produced by the
// normalizer from "under $5" and friends) over budget slang; slang words are
// still claimed so they never pollute the residual.
func extractPrice(run *extraction, remaining string) string {
	if m := priceOpRe.FindStringSubmatch(remaining); m != nil {
		v, _ := strconv.ParseFloat(m[2], 64)
		run.slots.Price = &NumericConstraint{Op: m[1], Value: v}
		remaining = consume(remaining, m[0])
	}
	for word, threshold := range tables.PriceSlang {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
		m := re.FindString(remaining)
		if m == "" {
			continue
		}
		if run.slots.Price == nil {
			run.slots.Price = &NumericConstraint{Op: threshold.Op, Value: threshold.Value}
		}
		remaining = consume(remaining, m)
	}
	return remaining
}
