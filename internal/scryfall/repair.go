package scryfall

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// RepairResult reports what the repair loop did to an invalid query.
type RepairResult struct {
	Repaired   bool             `json:"repaired"`
	Query      string           `json:"query"`
	Applied    []string         `json:"applied,omitempty"`
	Validation ValidationResult `json:"validation"`
}

type repairStrategy struct {
	name  string
	apply func(string) string
}

var (
	unknownTagRe    = regexp.MustCompile(`-?otag:([\w-]+)`)
	speculativeRe   = regexp.MustCompile(`\b(?:is:reprint|is:firstprint|year\s*(?:<=|>=|<|>|=)\s*\d+|usd\s*(?:<=|>=|<|>|=)\s*[\d.]+)`)
	quotedOracleRe  = regexp.MustCompile(`-?o:"([^"]*)"`)
	longOracleChars = 40
)

// repairStrategies run in fixed order, cheapest syntactic fix first, then
// increasingly aggressive clause drops. The loop stops at the first strategy
// whose result validates with at least one card.
func repairStrategies(knownTags map[string]bool) []repairStrategy {
	return []repairStrategy{
		{"collapse doubled or", func(q string) string {
			return doubledOrRe.ReplaceAllString(q, "or")
		}},
		{"fix stray or beside parens", func(q string) string {
			q = strayOrOpenRe.ReplaceAllString(q, "(")
			return strayOrCloseRe.ReplaceAllString(q, ")")
		}},
		{"remove empty parens", func(q string) string {
			return emptyParensRe.ReplaceAllString(q, "")
		}},
		{"strip regex oracle tokens", func(q string) string {
			return regexOracleRe.ReplaceAllString(q, "")
		}},
		{"strip unknown tags", func(q string) string {
			return unknownTagRe.ReplaceAllStringFunc(q, func(tok string) string {
				tag := strings.TrimPrefix(strings.TrimPrefix(tok, "-"), "otag:")
				if knownTags[tag] {
					return tok
				}
				return ""
			})
		}},
		{"fix doubled operators", func(q string) string {
			q = doubledColonRe.ReplaceAllString(q, "$1:")
			return doubledEqualsRe.ReplaceAllString(q, "$1=")
		}},
		{"drop speculative constraints", func(q string) string {
			return speculativeRe.ReplaceAllString(q, "")
		}},
		{"drop overlong oracle clause", func(q string) string {
			return quotedOracleRe.ReplaceAllStringFunc(q, func(tok string) string {
				// the limit applies to the quoted text, not the o:"" wrapper
				if m := quotedOracleRe.FindStringSubmatch(tok); len(m[1]) >= longOracleChars {
					return ""
				}
				return tok
			})
		}},
		{"flatten doubled parens", func(q string) string {
			return doubledOpenRe.ReplaceAllString(q, "(")
		}},
	}
}

// Repair walks the strategy list over an invalid query, re-validating after
// each rewrite that changed something, until a strategy yields a valid
// non-empty result or the list runs out. The returned query is the best
// attempt even when repair fails.
func (c *Client) Repair(ctx context.Context, query string, knownTags map[string]bool, overlyBroadThreshold int) RepairResult {
	result := RepairResult{Query: query}

	for _, strat := range repairStrategies(knownTags) {
		next := strings.TrimSpace(multiSpaceRe.ReplaceAllString(strat.apply(result.Query), " "))
		if next == result.Query || next == "" {
			continue
		}
		result.Query = next
		result.Applied = append(result.Applied, strat.name)

		if c.debug {
			fmt.Printf("[repair] %s -> %q\n", strat.name, next)
		}

		validation := c.Validate(ctx, next, overlyBroadThreshold)
		result.Validation = validation
		if validation.Valid && !validation.ZeroResults {
			result.Repaired = true
			return result
		}
	}
	return result
}
