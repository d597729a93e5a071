package scryfall

import (
	"regexp"
	"strings"
)

var (
	doubledOrRe     = regexp.MustCompile(`\bor\s+or\b`)
	strayOrOpenRe   = regexp.MustCompile(`\(\s*or\b\s*`)
	strayOrCloseRe  = regexp.MustCompile(`\s+or\s*\)`)
	emptyParensRe   = regexp.MustCompile(`\(\s*\)`)
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
	doubledOpenRe   = regexp.MustCompile(`\(\(`)
	regexOracleRe   = regexp.MustCompile(`-?o:/[^/]*/`)
	doubledColonRe  = regexp.MustCompile(`(\w)::`)
	doubledEqualsRe = regexp.MustCompile(`(\w)==`)
)

// SanitizeQuerySyntax fixes the parenthesis and boolean damage a bad merge
// can produce, without a network call. It runs before the first validation
// attempt so an obviously malformed query does not waste a round trip.
func SanitizeQuerySyntax(query string) string {
	query = doubledOrRe.ReplaceAllString(query, "or")
	query = strayOrOpenRe.ReplaceAllString(query, "(")
	query = strayOrCloseRe.ReplaceAllString(query, ")")
	query = emptyParensRe.ReplaceAllString(query, "")
	query = multiSpaceRe.ReplaceAllString(query, " ")
	return strings.TrimSpace(query)
}
