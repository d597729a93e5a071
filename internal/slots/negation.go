package slots

import (
	"regexp"

	"github.com/deckwise/scrybe/internal/tables"
)

var negationRe = regexp.MustCompile(`\b(?:not|without|no|isn't)\s+(?:an?\s+)?([a-z]+)\b`)

// extractNegations handles the generic "not X" / "without X" / "no X" forms
// left over after every structural extractor has run. A captured term that
// matches the type vocabulary becomes a type exclusion; anything else is
// excluded free text.
func extractNegations(run *extraction, remaining string) string {
	for {
		m := negationRe.FindStringSubmatch(remaining)
		if m == nil {
			return remaining
		}
		term := tables.SingularType(m[1])
		if tables.CardTypes[term] || tables.Subtypes[term] {
			addType(&run.slots.Types, term, bucketExclude)
		} else if !containsString(run.slots.ExcludeText, m[1]) {
			run.slots.ExcludeText = append(run.slots.ExcludeText, m[1])
		}
		remaining = consume(remaining, m[0])
	}
}
