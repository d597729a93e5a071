package assemble

import (
	"strconv"
	"strings"

	"github.com/deckwise/scrybe/internal/tables"
)

// Filters are caller-supplied constraints applied after assembly, typically
// the deck context of the requesting UI.
type Filters struct {
	Format        string   `json:"format,omitempty"`
	ColorIdentity []string `json:"colorIdentity,omitempty"`
	MaxCmc        float64  `json:"maxCmc,omitempty"`
}

// Empty reports whether no filter is set. MaxCmc zero means unset.
func (f Filters) Empty() bool {
	return f.Format == "" && len(f.ColorIdentity) == 0 && f.MaxCmc == 0
}

// ApplyExternalFilters appends each filter only when the query does not
// already constrain that dimension.
func ApplyExternalFilters(query string, f Filters) string {
	if f.Format != "" && !strings.Contains(query, "f:") {
		query = joinClause(query, "f:"+strings.ToLower(f.Format))
	}
	if len(f.ColorIdentity) > 0 && !strings.Contains(query, "ci") {
		letters := tables.SortColors(toColorLetters(f.ColorIdentity))
		if len(letters) > 0 {
			query = joinClause(query, "ci<="+strings.Join(letters, ""))
		}
	}
	if f.MaxCmc > 0 && !strings.Contains(query, "mv") {
		query = joinClause(query, "mv<="+strconv.FormatFloat(f.MaxCmc, 'f', -1, 64))
	}
	return query
}

// toColorLetters accepts either single letters or full color names.
func toColorLetters(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		c = strings.ToLower(strings.TrimSpace(c))
		if letter, ok := tables.ColorNames[c]; ok {
			out = append(out, letter)
			continue
		}
		out = append(out, c)
	}
	return out
}

func joinClause(query, clause string) string {
	if query == "" {
		return clause
	}
	return query + " " + clause
}
