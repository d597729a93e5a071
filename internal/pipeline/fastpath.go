package pipeline

import (
	"strings"

	"github.com/deckwise/scrybe/internal/tables"
)

// FastPathResult is the deterministic shortcut's output: clauses it could
// translate directly and the words it could not.
type FastPathResult struct {
	DeterministicQuery string   `json:"deterministicQuery"`
	Warnings           []string `json:"warnings,omitempty"`
	RemainingQuery     string   `json:"remainingQuery"`
}

// FastPath is the deterministic translation collaborator. The pipeline
// treats it as a black box; the keyword translator below is the default.
type FastPath interface {
	Translate(text string) FastPathResult
}

// KeywordFastPath maps individual known words straight to clauses: formats,
// card types, rarities and color names. Anything it does not recognize goes
// to RemainingQuery for the slot/concept path.
type KeywordFastPath struct{}

var _ FastPath = KeywordFastPath{}

// Translate walks the words of text left to right. Each word either becomes
// exactly one clause or stays in the remainder.
func (KeywordFastPath) Translate(text string) FastPathResult {
	var res FastPathResult
	var clauses, remaining []string

	for _, word := range strings.Fields(text) {
		switch {
		case tables.FormatAliases[word] != "":
			clauses = append(clauses, "f:"+tables.FormatAliases[word])
		case isFormatName(word):
			clauses = append(clauses, "f:"+word)
		case tables.IsCardType(tables.SingularType(word)):
			clauses = append(clauses, "t:"+tables.SingularType(word))
		case tables.IsSubtype(tables.SingularType(word)):
			clauses = append(clauses, "t:"+tables.SingularType(word))
		case tables.RarityAliases[word] != "":
			clauses = append(clauses, "r:"+tables.RarityAliases[word])
		case tables.ColorNames[word] != "":
			clauses = append(clauses, "c:"+tables.ColorNames[word])
		case tables.StopWords[word]:
			// claimed silently
		default:
			remaining = append(remaining, word)
		}
	}

	res.DeterministicQuery = strings.Join(dedupeCaseInsensitive(clauses), " ")
	res.RemainingQuery = strings.Join(remaining, " ")
	return res
}

// isFormatName accepts canonical format names that are their own alias.
func isFormatName(word string) bool {
	for _, canonical := range tables.FormatAliases {
		if canonical == word {
			return true
		}
	}
	return false
}

func dedupeCaseInsensitive(toks []string) []string {
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
