package scryfall

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BroadenResult reports what the broaden loop did to a valid-but-empty
// query.
type BroadenResult struct {
	Broadened  bool             `json:"broadened"`
	Query      string           `json:"query"`
	Applied    []string         `json:"applied,omitempty"`
	Validation ValidationResult `json:"validation"`
}

type broadenStrategy struct {
	name  string
	apply func(string) string
}

var (
	mvCeilingRe  = regexp.MustCompile(`\bmv<=(\d+)`)
	formatClause = regexp.MustCompile(`\bf:\S+\s*`)
	priceClause  = regexp.MustCompile(`\busd\s*(?:<=|>=|<|>|=)\s*[\d.]+\s*`)
	excludeType  = regexp.MustCompile(`-t:\S+\s*`)
	colorClause  = regexp.MustCompile(`\bci?\s*(?:<=|>=|<|>|=|:)\s*\S+\s*`)
	yearClause   = regexp.MustCompile(`\byear\s*(?:<=|>=|<|>|=)\s*\d+\s*`)
)

// broadenStrategies relax constraints one at a time, least destructive
// first. Raising a mana-value ceiling keeps the user's intent better than
// dropping a whole dimension, so it goes first.
var broadenStrategies = []broadenStrategy{
	{"raise mana value ceiling", func(q string) string {
		return mvCeilingRe.ReplaceAllStringFunc(q, func(tok string) string {
			n, err := strconv.Atoi(strings.TrimPrefix(tok, "mv<="))
			if err != nil {
				return tok
			}
			return "mv<=" + strconv.Itoa(n+1)
		})
	}},
	{"drop format restriction", func(q string) string {
		return formatClause.ReplaceAllString(q, "")
	}},
	{"drop price restriction", func(q string) string {
		return priceClause.ReplaceAllString(q, "")
	}},
	{"drop a type exclusion", func(q string) string {
		dropped := false
		return excludeType.ReplaceAllStringFunc(q, func(tok string) string {
			if dropped {
				return tok
			}
			dropped = true
			return ""
		})
	}},
	{"drop color identity", func(q string) string {
		return colorClause.ReplaceAllString(q, "")
	}},
	{"drop year restriction", func(q string) string {
		return yearClause.ReplaceAllString(q, "")
	}},
}

// Broaden relaxes a valid query that returned zero results, one strategy at
// a time, stopping at the first relaxation that finds cards. The returned
// query is the most-relaxed attempt even when all strategies come up empty.
func (c *Client) Broaden(ctx context.Context, query string, overlyBroadThreshold int) BroadenResult {
	result := BroadenResult{Query: query}

	for _, strat := range broadenStrategies {
		next := strings.TrimSpace(multiSpaceRe.ReplaceAllString(strat.apply(result.Query), " "))
		if next == result.Query || next == "" {
			continue
		}
		result.Query = next
		result.Applied = append(result.Applied, strat.name)

		if c.debug {
			fmt.Printf("[broaden] %s -> %q\n", strat.name, next)
		}

		validation := c.Validate(ctx, next, overlyBroadThreshold)
		result.Validation = validation
		if validation.Valid && !validation.ZeroResults {
			result.Broadened = true
			return result
		}
	}
	return result
}
