package concepts

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

const exactMatchConfidence = 0.95

// Matcher resolves residual text to concept matches.
type Matcher struct {
	library    []Concept
	aliasIndex []aliasEntry
	store      Store
	debug      bool
}

type aliasEntry struct {
	alias   string
	concept *Concept
}

// NewMatcher builds a matcher over library. store may be nil, in which case
// only the in-process alias table answers.
func NewMatcher(library []Concept, store Store, debug bool) *Matcher {
	m := &Matcher{library: library, store: store, debug: debug}
	for i := range m.library {
		c := &m.library[i]
		for _, alias := range c.Aliases {
			m.aliasIndex = append(m.aliasIndex, aliasEntry{alias: alias, concept: c})
		}
	}
	// longest alias first so "mana ramp" beats "ramp"
	sort.SliceStable(m.aliasIndex, func(i, j int) bool {
		return len(m.aliasIndex[i].alias) > len(m.aliasIndex[j].alias)
	})
	return m
}

// Library returns the concept set the matcher was built over.
func (m *Matcher) Library() []Concept {
	return m.library
}

// Match finds up to maxMatches concepts for the residual text, dropping
// anything under minConfidence. Exact alias hits come from the in-process
// table; the external store fills in the rest and its errors are swallowed.
func (m *Matcher) Match(ctx context.Context, residual string, maxMatches int, minConfidence float64) []Match {
	residual = strings.TrimSpace(residual)
	if residual == "" || maxMatches <= 0 {
		return nil
	}

	var matches []Match
	found := make(map[string]bool)

	for _, entry := range m.aliasIndex {
		if found[entry.concept.ID] {
			continue
		}
		if containsWholePhrase(residual, entry.alias) {
			found[entry.concept.ID] = true
			matches = append(matches, matchFromConcept(entry.concept, entry.alias, exactMatchConfidence, 1.0, MatchExact))
		}
	}

	if m.store != nil {
		term := firstWord(residual)
		external, err := m.store.Lookup(ctx, term)
		if err != nil {
			// external lookup is best-effort; exact results stand alone
			if m.debug {
				fmt.Printf("concept store lookup failed for %q: %v\n", term, err)
			}
		} else {
			for _, em := range external {
				if found[em.ConceptID] {
					continue
				}
				found[em.ConceptID] = true
				if em.Confidence == 0 {
					em.Confidence = 0.8
				}
				if em.MatchType == "" {
					em.MatchType = MatchAlias
				}
				matches = append(matches, em)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		if matches[i].Priority != matches[j].Priority {
			return matches[i].Priority > matches[j].Priority
		}
		return matches[i].Confidence > matches[j].Confidence
	})

	kept := matches[:0]
	for _, match := range matches {
		if match.Confidence >= minConfidence {
			kept = append(kept, match)
		}
	}
	if len(kept) > maxMatches {
		kept = kept[:maxMatches]
	}
	return kept
}

func matchFromConcept(c *Concept, pattern string, confidence, similarity float64, matchType string) Match {
	return Match{
		ConceptID:         c.ID,
		Pattern:           pattern,
		Templates:         append([]string{}, c.Templates...),
		NegativeTemplates: append([]string{}, c.NegativeTemplates...),
		Description:       c.Description,
		Confidence:        confidence,
		Category:          c.Category,
		Priority:          c.Priority,
		Similarity:        similarity,
		MatchType:         matchType,
	}
}

func containsWholePhrase(text, phrase string) bool {
	idx := strings.Index(text, phrase)
	for idx >= 0 {
		beforeOK := idx == 0 || text[idx-1] == ' '
		after := idx + len(phrase)
		afterOK := after == len(text) || text[after] == ' '
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(text[idx+1:], phrase)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func firstWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
