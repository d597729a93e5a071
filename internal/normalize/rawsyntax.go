package normalize

import (
	"regexp"
	"strings"
)

var (
	operatorTokenRe = regexp.MustCompile(`(?i)(?:^|\s)-?(?:f|c|ci|t|o|otag|r|mv|pow|tou|year|usd|is|id|cmc)\s*(?::|<=|>=|<|>|=)\S`)
	quotedOracleRe  = regexp.MustCompile(`(?i)-?o:"[^"]*"`)
	boolGroupRe     = regexp.MustCompile(`(?i)\(\s*\S+.*\s+or\s+.*\)`)
	bangNameRe      = regexp.MustCompile(`^!`)
)

// IsRawSyntax reports whether text already looks like search DSL rather than
// natural language. Raw queries skip semantic extraction entirely; the
// pipeline only sanitizes and validates them.
func IsRawSyntax(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if bangNameRe.MatchString(trimmed) {
		return true
	}
	if quotedOracleRe.MatchString(trimmed) {
		return true
	}
	if boolGroupRe.MatchString(trimmed) {
		return true
	}
	if operatorTokenRe.MatchString(trimmed) {
		// A lone price rewrite produced by normalization ("usd<5") is not
		// enough to call the whole query raw syntax; require either a field
		// operator with a colon or more than one operator token.
		matches := operatorTokenRe.FindAllString(trimmed, -1)
		if len(matches) > 1 || strings.Contains(matches[0], ":") {
			return true
		}
	}
	return false
}
