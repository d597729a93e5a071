// Package normalize turns raw user text into the canonical lowercase form
// the rest of the pipeline matches against. Normalization is a pure function
// and idempotent: running it on its own output changes nothing.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/deckwise/scrybe/internal/tables"
)

// NormalizedQuery is the normalizer's output. Produced once per request and
// never mutated afterwards.
type NormalizedQuery struct {
	Original         string
	Normalized       string
	PreservedPhrases []string
	ColorMappings    []ColorMapping
	NumberMappings   []NumberMapping
}

// ColorMapping records a multicolor name seen in the text so the color
// extractor can resolve it later without re-scanning.
type ColorMapping struct {
	Name   string
	Colors []string
}

// NumberMapping records one spelled-out number substitution.
type NumberMapping struct {
	Word  string
	Digit string
}

var (
	quotedRe     = regexp.MustCompile(`"([^"]+)"`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	curlyReplacer = strings.NewReplacer(
		"“", `"`, "”", `"`,
		"‘", "'", "’", "'",
	)
)

// comparisonRule rewrites one spoken comparison phrase into operator syntax.
// The rule set is order-independent: no rule's output matches another rule's
// pattern.
type comparisonRule struct {
	pattern *regexp.Regexp
	replace string
}

var comparisonRules = []comparisonRule{
	// price with a dollar sign or the word "dollars"
	{regexp.MustCompile(`(?:under|below|less than) \$(\d+(?:\.\d+)?)`), "usd<$1"},
	{regexp.MustCompile(`(?:under|below|less than) (\d+(?:\.\d+)?) (?:dollars|bucks)`), "usd<$1"},
	{regexp.MustCompile(`(?:over|above|more than) \$(\d+(?:\.\d+)?)`), "usd>$1"},
	{regexp.MustCompile(`(?:over|above|more than) (\d+(?:\.\d+)?) (?:dollars|bucks)`), "usd>$1"},
	{regexp.MustCompile(`\$(\d+(?:\.\d+)?) or less`), "usd<=$1"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?) (?:dollars|bucks) or less`), "usd<=$1"},
	{regexp.MustCompile(`\$(\d+(?:\.\d+)?) or more`), "usd>=$1"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?) (?:dollars|bucks) or more`), "usd>=$1"},
	{regexp.MustCompile(`(?:costs? )?exactly \$(\d+(?:\.\d+)?)`), "usd=$1"},
	// mana value phrasings; the slot extractor reads these tokens directly
	{regexp.MustCompile(`mana value (?:of )?(\d+) or less`), "mana value<=$1"},
	{regexp.MustCompile(`mana value (?:of )?(\d+) or more`), "mana value>=$1"},
	{regexp.MustCompile(`(\d+) mana or less`), "mana value<=$1"},
	{regexp.MustCompile(`(\d+) mana or more`), "mana value>=$1"},
	{regexp.MustCompile(`(?:under|below|less than) (\d+) mana`), "mana value<$1"},
	{regexp.MustCompile(`(?:over|above|more than) (\d+) mana`), "mana value>$1"},
}

// Normalize lowercases, canonicalizes and rewrites text into the form the
// extractors expect, recording every substitution it makes.
func Normalize(text string) NormalizedQuery {
	nq := NormalizedQuery{Original: text}

	lower := cases.Lower(language.English).String(norm.NFC.String(strings.TrimSpace(text)))
	lower = curlyReplacer.Replace(lower)

	// Quoted substrings survive every later rewrite untouched.
	for _, m := range quotedRe.FindAllStringSubmatch(lower, -1) {
		nq.PreservedPhrases = append(nq.PreservedPhrases, m[1])
	}

	lower = applyPhraseTable(lower, tables.Synonyms, nil)

	// Multicolor names are recorded here but substituted by the color
	// extractor, which knows whether they are being used as colors at all.
	for name, colors := range tables.GuildNames {
		if containsPhrase(lower, name) {
			nq.ColorMappings = append(nq.ColorMappings, ColorMapping{Name: name, Colors: colors})
		}
	}

	lower = substituteNumbers(lower, &nq)

	for _, rule := range comparisonRules {
		lower = rule.pattern.ReplaceAllString(lower, rule.replace)
	}

	nq.Normalized = strings.TrimSpace(whitespaceRe.ReplaceAllString(lower, " "))
	return nq
}

// applyPhraseTable replaces whole-word and whole-phrase occurrences of each
// key. Longer keys run first so "mana cost" wins over "mana".
func applyPhraseTable(text string, table map[string]string, record func(from, to string)) string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	// longest-first keeps multi-word entries from being shadowed
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if len(keys[j]) > len(keys[i]) {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
	}
	for _, k := range keys {
		re := phraseRegexp(k)
		if re.MatchString(text) {
			if record != nil {
				record(k, table[k])
			}
			text = re.ReplaceAllString(text, table[k])
		}
	}
	return text
}

func phraseRegexp(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
}

func containsPhrase(text, phrase string) bool {
	return phraseRegexp(phrase).MatchString(text)
}

func substituteNumbers(text string, nq *NormalizedQuery) string {
	words := strings.Fields(text)
	changed := false
	for i, w := range words {
		if digit, ok := tables.WordNumbers[w]; ok {
			nq.NumberMappings = append(nq.NumberMappings, NumberMapping{Word: w, Digit: digit})
			words[i] = digit
			changed = true
		}
	}
	if !changed {
		return text
	}
	return strings.Join(words, " ")
}

// String implements fmt.Stringer for debug traces.
func (nq NormalizedQuery) String() string {
	return fmt.Sprintf("normalized=%q preserved=%d colors=%d numbers=%d",
		nq.Normalized, len(nq.PreservedPhrases), len(nq.ColorMappings), len(nq.NumberMappings))
}
