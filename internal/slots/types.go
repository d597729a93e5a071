package slots

import (
	"regexp"
	"strings"

	"github.com/deckwise/scrybe/internal/tables"
)

var (
	utilityLandRe = regexp.MustCompile(`\butility lands?\b`)
	negTypeRe     = regexp.MustCompile(`\b(?:non[- ]?|not an? |isn't an? )([a-z]+)`)
	orListRe      = regexp.MustCompile(`\b([a-z]+(?:,\s*[a-z]+)*,?\s+or\s+[a-z]+)\b`)
	spellsWordRe  = regexp.MustCompile(`\bspells?\b`)
)

// extractTypes fills the three type buckets. Ordering inside this function
// is deliberate: target phrases and negations are consumed before positive
// scanning so "equipped creature" and "non-creature" never add a positive
// creature constraint.
func extractTypes(run *extraction, remaining string) string {
	t := &run.slots.Types

	// "equipped creature" names an effect target, not a result filter
	for _, phrase := range tables.TypeTargetPhrases {
		for strings.Contains(remaining, phrase) {
			remaining = consume(remaining, phrase)
		}
	}

	// "utility lands" is shorthand for nonbasic lands
	if m := utilityLandRe.FindString(remaining); m != "" {
		addType(t, "land", bucketInclude)
		addType(t, "basic", bucketExclude)
		remaining = consume(remaining, m)
	}

	// negated types before positive scanning; captures that are not type
	// words ("nonsense") stay in the text for later extractors
	for _, m := range negTypeRe.FindAllStringSubmatch(remaining, -1) {
		word := tables.SingularType(m[1])
		if !tables.CardTypes[word] {
			continue
		}
		addType(t, word, bucketExclude)
		remaining = consume(remaining, m[0])
	}

	// explicit OR phrasing: "artifacts or lands", "creatures, artifacts, or lands"
	if m := orListRe.FindString(remaining); m != "" {
		candidates := splitOrList(m)
		types := make([]string, 0, len(candidates))
		allTypes := len(candidates) >= 2
		for _, c := range candidates {
			s := tables.SingularType(c)
			if !tables.CardTypes[s] {
				allTypes = false
				break
			}
			types = append(types, s)
		}
		if allTypes {
			for _, typ := range types {
				addType(t, typ, bucketIncludeOr)
			}
			remaining = consume(remaining, m)
		}
	}

	// positive single-type scan
	for _, w := range strings.Fields(remaining) {
		s := tables.SingularType(w)
		if tables.CardTypes[s] && !t.Has(s) {
			addType(t, s, bucketInclude)
			remaining = consume(remaining, w)
		}
	}

	// "spells" means instant-or-sorcery unless either is already claimed;
	// runs after the positive scan so "instant spells" keeps the explicit
	// type instead of widening to the pair
	if m := spellsWordRe.FindString(remaining); m != "" {
		if !t.Has("instant") && !t.Has("sorcery") {
			addType(t, "instant", bucketIncludeOr)
			addType(t, "sorcery", bucketIncludeOr)
		}
		remaining = consume(remaining, m)
	}

	return strings.TrimSpace(remaining)
}

func extractSubtypes(run *extraction, remaining string) string {
	for _, w := range strings.Fields(remaining) {
		s := tables.SingularType(w)
		if tables.Subtypes[s] && !containsString(run.slots.Subtypes, s) {
			run.slots.Subtypes = append(run.slots.Subtypes, s)
			remaining = consume(remaining, w)
		}
	}
	return strings.TrimSpace(remaining)
}

type typeBucket int

const (
	bucketInclude typeBucket = iota
	bucketIncludeOr
	bucketExclude
)

// addType places typ into exactly one bucket; a type already claimed
// anywhere is never added again.
func addType(t *TypeConstraint, typ string, bucket typeBucket) {
	if t.Has(typ) {
		return
	}
	switch bucket {
	case bucketInclude:
		t.Include = append(t.Include, typ)
	case bucketIncludeOr:
		t.IncludeOr = append(t.IncludeOr, typ)
	case bucketExclude:
		t.Exclude = append(t.Exclude, typ)
	}
}

func splitOrList(list string) []string {
	list = strings.ReplaceAll(list, ",", " ")
	list = regexp.MustCompile(`\bor\b`).ReplaceAllString(list, " ")
	return strings.Fields(list)
}
