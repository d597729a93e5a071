// Package intent performs lightweight lexical classification of a normalized
// query: the coarse mode (find cards, rules question, deck help, name
// lookup) and the weighted card-function tags downstream stages use.
package intent

import (
	"regexp"
	"sort"
	"strings"
)

// Mode values.
const (
	ModeFindCards     = "find_cards"
	ModeFindByName    = "find_by_name"
	ModeRulesQuestion = "rules_question"
	ModeDeckHelp      = "deck_help"
)

// FunctionScore is one card-function tag with its confidence.
type FunctionScore struct {
	Function   string  `json:"function"`
	Confidence float64 `json:"confidence"`
}

// ClassifiedIntent is the classifier's output.
type ClassifiedIntent struct {
	Mode              string          `json:"mode"`
	Functions         []FunctionScore `json:"functions"`
	CardNameCandidate string          `json:"cardNameCandidate,omitempty"`
	IsCardNameSearch  bool            `json:"isCardNameSearch"`
	Suggestions       []string        `json:"suggestions,omitempty"`
	Ambiguous         bool            `json:"ambiguous"`
}

// Classifier holds the compiled rule families. Construct once, reuse across
// requests; classification itself is pure.
type Classifier struct {
	modeRules     []modeRule
	functionRules []functionRule
	overloaded    map[string]overloadedTerm
}

type modeRule struct {
	mode       string
	confidence float64
	pattern    *regexp.Regexp
}

type functionRule struct {
	function   string
	confidence float64
	pattern    *regexp.Regexp
}

// NewClassifier builds a classifier with the default rule families.
func NewClassifier() *Classifier {
	return &Classifier{
		modeRules:     defaultModeRules(),
		functionRules: defaultFunctionRules(),
		overloaded:    defaultOverloadedTerms(),
	}
}

// Classify runs the mode rules (highest confidence wins) and the function
// rules (every match contributes, one entry per function id) over normalized
// text.
func (c *Classifier) Classify(text string) ClassifiedIntent {
	out := ClassifiedIntent{Mode: ModeFindCards}

	best := 0.0
	for _, rule := range c.modeRules {
		if rule.pattern.MatchString(text) && rule.confidence > best {
			best = rule.confidence
			out.Mode = rule.mode
		}
	}

	if out.Mode == ModeFindByName {
		out.IsCardNameSearch = true
		out.CardNameCandidate = extractNameCandidate(text)
	}

	seen := make(map[string]bool)
	for _, rule := range c.functionRules {
		if seen[rule.function] {
			continue
		}
		if rule.pattern.MatchString(text) {
			seen[rule.function] = true
			out.Functions = append(out.Functions, FunctionScore{
				Function:   rule.function,
				Confidence: rule.confidence,
			})
		}
	}
	sort.SliceStable(out.Functions, func(i, j int) bool {
		return out.Functions[i].Confidence > out.Functions[j].Confidence
	})

	c.detectAmbiguity(text, &out)
	return out
}

var nameCandidateRe = regexp.MustCompile(`(?:called|named)\s+"?([a-z0-9' ,-]+?)"?$`)

func extractNameCandidate(text string) string {
	if m := nameCandidateRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if q := regexp.MustCompile(`"([^"]+)"`).FindStringSubmatch(text); q != nil {
		return q[1]
	}
	return ""
}
