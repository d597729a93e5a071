// Package assemble turns extracted slots and concept matches into a single
// DSL query string, then resolves conflicts among the resulting clauses.
package assemble

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/deckwise/scrybe/internal/concepts"
	"github.com/deckwise/scrybe/internal/slots"
	"github.com/deckwise/scrybe/internal/tables"
)

// DefaultMaxQueryLength bounds the assembled query. Concept additions that
// would overflow are skipped whole; truncation is the last resort.
const DefaultMaxQueryLength = 250

// Assembled is the output of one assembly pass.
type Assembled struct {
	Query    string   `json:"query"`
	Tokens   []string `json:"tokens"`
	Warnings []string `json:"warnings,omitempty"`
}

// Assemble renders slots and concept matches into clauses in a fixed order:
// format, colors, OR-types, AND-types, excluded types, subtypes, numeric
// constraints, rarity, concept templates by priority, tags, specials,
// include text, exclude text. maxLen <= 0 uses DefaultMaxQueryLength.
func Assemble(s *slots.ExtractedSlots, matches []concepts.Match, maxLen int) Assembled {
	if maxLen <= 0 {
		maxLen = DefaultMaxQueryLength
	}

	var out Assembled
	var toks []string

	if s.Format != "" {
		toks = append(toks, "f:"+s.Format)
	}
	if s.Colors != nil {
		if c := renderColors(s.Colors); c != "" {
			toks = append(toks, c)
		}
	}

	include, orTypes := collapseSpellsPair(s.Types.Include, s.Types.IncludeOr)
	if len(orTypes) > 0 {
		toks = append(toks, orGroup(orTypes))
	}
	for _, typ := range include {
		toks = append(toks, "t:"+typ)
	}
	for _, typ := range s.Types.Exclude {
		toks = append(toks, "-t:"+typ)
	}
	for _, sub := range s.Subtypes {
		toks = append(toks, "t:"+sub)
	}

	toks = appendNumeric(toks, "mv", s.ManaValue)
	toks = appendNumeric(toks, "pow", s.Power)
	toks = appendNumeric(toks, "tou", s.Toughness)
	toks = appendNumeric(toks, "year", s.Year)
	toks = appendNumeric(toks, "usd", s.Price)

	if s.Rarity != "" {
		toks = append(toks, "r:"+s.Rarity)
	}

	claimed := claimedTypes(s)
	for _, m := range sortByPriority(matches) {
		kept := stripClaimedTypeClauses(m.Templates, claimed)
		if len(kept) == 0 {
			out.Warnings = append(out.Warnings, fmt.Sprintf("concept %s skipped: templates fully covered by explicit filters", m.ConceptID))
			continue
		}
		addition := append(kept, m.NegativeTemplates...)
		if overflows(toks, addition, maxLen) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("concept %s skipped: query length limit", m.ConceptID))
			continue
		}
		toks = append(toks, addition...)
	}

	for _, tag := range s.Tags {
		toks = append(toks, "otag:"+tag)
	}
	for _, special := range s.Specials {
		toks = append(toks, "is:"+special)
	}
	for _, phrase := range s.IncludeText {
		toks = append(toks, `o:"`+phrase+`"`)
	}
	for _, phrase := range s.ExcludeText {
		toks = append(toks, `-o:"`+phrase+`"`)
	}

	query := strings.Join(dedupeTokens(Tokenize(strings.Join(toks, " "))), " ")
	query = balanceParens(query)
	if len(query) > maxLen {
		query = truncateAtToken(query, maxLen)
		out.Warnings = append(out.Warnings, "query truncated to length limit")
	}

	out.Query = query
	out.Tokens = Tokenize(query)
	return out
}

// renderColors picks the attribute (ci for identity, c for printed color)
// and the comparator the constraint's operator implies.
func renderColors(c *slots.ColorConstraint) string {
	letters := tables.SortColors(c.Values)
	if len(letters) == 0 {
		return ""
	}
	attr := "c"
	if c.Mode == slots.ModeIdentity {
		attr = "ci"
	}
	joined := strings.Join(letters, "")
	switch c.Operator {
	case slots.OpExact:
		return attr + "=" + joined
	case slots.OpWithin:
		return attr + "<=" + joined
	case slots.OpOr:
		parts := make([]string, len(letters))
		for i, l := range letters {
			parts[i] = attr + ":" + l
		}
		return "(" + strings.Join(parts, " or ") + ")"
	default:
		return attr + ":" + joined
	}
}

// collapseSpellsPair moves instant+sorcery out of the AND bucket into the
// OR group when both are present, since no card is both.
func collapseSpellsPair(include, includeOr []string) (and []string, or []string) {
	or = append(or, includeOr...)
	hasInstant := containsString(include, "instant")
	hasSorcery := containsString(include, "sorcery")
	for _, typ := range include {
		if hasInstant && hasSorcery && (typ == "instant" || typ == "sorcery") {
			if !containsString(or, typ) {
				or = append(or, typ)
			}
			continue
		}
		and = append(and, typ)
	}
	return and, or
}

func orGroup(types []string) string {
	parts := make([]string, len(types))
	for i, typ := range types {
		parts[i] = "t:" + typ
	}
	return "(" + strings.Join(parts, " or ") + ")"
}

func appendNumeric(toks []string, name string, nc *slots.NumericConstraint) []string {
	if nc == nil {
		return toks
	}
	return append(toks, name+nc.Op+strconv.FormatFloat(nc.Value, 'f', -1, 64))
}

func claimedTypes(s *slots.ExtractedSlots) map[string]bool {
	claimed := make(map[string]bool)
	for _, typ := range s.Types.Include {
		claimed[typ] = true
	}
	for _, typ := range s.Types.IncludeOr {
		claimed[typ] = true
	}
	for _, sub := range s.Subtypes {
		claimed[sub] = true
	}
	return claimed
}

// stripClaimedTypeClauses removes t:X tokens from concept templates when X
// was already claimed by slot extraction, so one type never arrives by two
// routes.
func stripClaimedTypeClauses(templates []string, claimed map[string]bool) []string {
	var kept []string
	for _, tpl := range templates {
		var remaining []string
		for _, tok := range Tokenize(tpl) {
			if typ, ok := strings.CutPrefix(tok, "t:"); ok && claimed[typ] {
				continue
			}
			remaining = append(remaining, tok)
		}
		if len(remaining) > 0 {
			kept = append(kept, strings.Join(remaining, " "))
		}
	}
	return kept
}

func sortByPriority(matches []concepts.Match) []concepts.Match {
	sorted := append([]concepts.Match{}, matches...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}

func overflows(toks, addition []string, maxLen int) bool {
	length := len(strings.Join(toks, " "))
	for _, a := range addition {
		length += 1 + len(a)
	}
	return length > maxLen
}

// dedupeTokens drops exact duplicates, case-insensitively, keeping first
// occurrence order.
func dedupeTokens(toks []string) []string {
	seen := make(map[string]bool, len(toks))
	var out []string
	for _, tok := range toks {
		key := strings.ToLower(tok)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tok)
	}
	return out
}

// balanceParens appends missing closers or strips excess ones.
func balanceParens(query string) string {
	depth := 0
	var b strings.Builder
	for _, r := range query {
		switch r {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				continue
			}
			depth--
		}
		b.WriteRune(r)
	}
	out := b.String()
	for ; depth > 0; depth-- {
		out += ")"
	}
	return strings.TrimSpace(out)
}

// truncateAtToken cuts at the last token boundary at or before maxLen so a
// clause is never split mid-token.
func truncateAtToken(query string, maxLen int) string {
	toks := Tokenize(query)
	out := ""
	for _, tok := range toks {
		candidate := tok
		if out != "" {
			candidate = out + " " + tok
		}
		if len(candidate) > maxLen {
			break
		}
		out = candidate
	}
	return balanceParens(out)
}

// Tokenize splits a query into clause tokens, keeping quoted phrases and
// parenthesized groups whole.
func Tokenize(query string) []string {
	var out []string
	var field strings.Builder
	inQuote := false
	depth := 0
	for _, r := range query {
		switch {
		case r == '"':
			inQuote = !inQuote
			field.WriteRune(r)
		case r == '(' && !inQuote:
			depth++
			field.WriteRune(r)
		case r == ')' && !inQuote:
			if depth > 0 {
				depth--
			}
			field.WriteRune(r)
		case r == ' ' && !inQuote && depth == 0:
			if field.Len() > 0 {
				out = append(out, field.String())
				field.Reset()
			}
		default:
			field.WriteRune(r)
		}
	}
	if field.Len() > 0 {
		out = append(out, field.String())
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
