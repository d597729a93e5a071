package assemble

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deckwise/scrybe/internal/tables"
)

// ConflictResult reports what the conflict pass removed or rewrote.
// Conflicts are informational descriptions; Warnings are correctness
// cautions surfaced to the caller; Deduplicated is the surviving token list.
type ConflictResult struct {
	Conflicts    []string `json:"conflicts,omitempty"`
	Deduplicated []string `json:"deduplicated"`
	Warnings     []string `json:"warnings,omitempty"`
}

// DetectConflicts resolves redundant or impossible clause combinations in a
// fixed rule order: simple types swallowed by OR-groups, exclusive AND
// pairs, duplicate OR-groups, tag contradictions, duplicate tokens, and
// negated-vs-positive type clashes.
func DetectConflicts(toks []string) ConflictResult {
	var res ConflictResult

	toks = dropTypesCoveredByOrGroups(toks, &res)
	toks = mergeExclusivePairs(toks, &res)
	toks = dropDuplicateOrGroups(toks, &res)
	toks = dropContradictedNegativeTags(toks, &res)
	toks = dedupeTokens(toks)
	toks = dropNegatedPositives(toks, &res)

	res.Deduplicated = toks
	return res
}

// Rule 1: a simple t:X alongside an OR-group containing X is either
// redundant or unsatisfiable, so the simple clause goes.
func dropTypesCoveredByOrGroups(toks []string, res *ConflictResult) []string {
	covered := make(map[string]bool)
	for _, tok := range toks {
		for _, typ := range orGroupTypes(tok) {
			covered[typ] = true
		}
	}
	if len(covered) == 0 {
		return toks
	}
	var out []string
	for _, tok := range toks {
		if typ, ok := simpleType(tok); ok && covered[typ] {
			res.Conflicts = append(res.Conflicts, fmt.Sprintf("dropped t:%s already covered by an or-group", typ))
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Rule 2: two mutually exclusive types as AND clauses match no card; turn
// the whole exclusive cluster into one OR-group.
func mergeExclusivePairs(toks []string, res *ConflictResult) []string {
	var simple []string
	for _, tok := range toks {
		if typ, ok := simpleType(tok); ok {
			simple = append(simple, typ)
		}
	}

	exclusive := make(map[string]bool)
	for i := 0; i < len(simple); i++ {
		for j := i + 1; j < len(simple); j++ {
			if tables.AreExclusiveTypes(simple[i], simple[j]) {
				exclusive[simple[i]] = true
				exclusive[simple[j]] = true
			}
		}
	}
	if len(exclusive) == 0 {
		return toks
	}

	union := make([]string, 0, len(exclusive))
	for typ := range exclusive {
		union = append(union, typ)
	}
	sort.Strings(union)
	res.Conflicts = append(res.Conflicts, fmt.Sprintf("exclusive types %s rewritten as an or-group", strings.Join(union, ", ")))

	var out []string
	inserted := false
	for _, tok := range toks {
		if typ, ok := simpleType(tok); ok && exclusive[typ] {
			if !inserted {
				out = append(out, orGroup(union))
				inserted = true
			}
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Rule 3: OR-groups with identical type sets are duplicates regardless of
// member order.
func dropDuplicateOrGroups(toks []string, res *ConflictResult) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range toks {
		types := orGroupTypes(tok)
		if len(types) == 0 {
			out = append(out, tok)
			continue
		}
		sorted := append([]string{}, types...)
		sort.Strings(sorted)
		key := strings.Join(sorted, "|")
		if seen[key] {
			res.Conflicts = append(res.Conflicts, fmt.Sprintf("dropped duplicate or-group %s", tok))
			continue
		}
		seen[key] = true
		out = append(out, tok)
	}
	return out
}

// Rule 4: otag:X plus -otag:X contradict; the explicit positive wins.
func dropContradictedNegativeTags(toks []string, res *ConflictResult) []string {
	positive := make(map[string]bool)
	for _, tok := range toks {
		if tag, ok := strings.CutPrefix(tok, "otag:"); ok {
			positive[tag] = true
		}
	}
	var out []string
	for _, tok := range toks {
		if tag, ok := strings.CutPrefix(tok, "-otag:"); ok && positive[tag] {
			res.Conflicts = append(res.Conflicts, fmt.Sprintf("dropped -otag:%s contradicting otag:%s", tag, tag))
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Rule 6: -t:X beside t:X keeps the negation, since the user spelled out
// the exclusion.
func dropNegatedPositives(toks []string, res *ConflictResult) []string {
	excluded := make(map[string]bool)
	for _, tok := range toks {
		if typ, ok := strings.CutPrefix(tok, "-t:"); ok {
			excluded[typ] = true
		}
	}
	if len(excluded) == 0 {
		return toks
	}
	var out []string
	for _, tok := range toks {
		if typ, ok := simpleType(tok); ok && excluded[typ] {
			res.Warnings = append(res.Warnings, fmt.Sprintf("both t:%s and -t:%s requested; keeping the exclusion", typ, typ))
			continue
		}
		out = append(out, tok)
	}
	return out
}

// simpleType returns X for a plain t:X clause.
func simpleType(tok string) (string, bool) {
	typ, ok := strings.CutPrefix(tok, "t:")
	if !ok || typ == "" || strings.ContainsAny(typ, "() ") {
		return "", false
	}
	return strings.ToLower(typ), true
}

// orGroupTypes returns the member types of a pure (t:X or t:Y ...) group,
// or nil if the token is anything else.
func orGroupTypes(tok string) []string {
	if !strings.HasPrefix(tok, "(") || !strings.HasSuffix(tok, ")") {
		return nil
	}
	inner := tok[1 : len(tok)-1]
	var types []string
	for i, part := range strings.Fields(inner) {
		if i%2 == 1 {
			if !strings.EqualFold(part, "or") {
				return nil
			}
			continue
		}
		typ, ok := simpleType(strings.ToLower(part))
		if !ok {
			return nil
		}
		types = append(types, typ)
	}
	return types
}
