// Package concepts maps leftover query phrases ("ramp", "board wipe") to
// curated search templates. The in-process alias table answers first; an
// optional database-backed store widens coverage and its failures are never
// fatal.
package concepts

// Concept is one curated search pattern: a set of spoken aliases and the
// DSL templates that express it.
type Concept struct {
	ID                string   `yaml:"id"`
	Aliases           []string `yaml:"aliases"`
	Templates         []string `yaml:"templates"`
	NegativeTemplates []string `yaml:"negativeTemplates,omitempty"`
	Description       string   `yaml:"description"`
	Category          string   `yaml:"category"`
	Priority          int      `yaml:"priority"`
}

// Match is one concept hit with its provenance and scores.
type Match struct {
	ConceptID         string   `json:"conceptId"`
	Pattern           string   `json:"pattern"`
	Templates         []string `json:"templates"`
	NegativeTemplates []string `json:"negativeTemplates,omitempty"`
	Description       string   `json:"description"`
	Confidence        float64  `json:"confidence"`
	Category          string   `json:"category"`
	Priority          int      `json:"priority"`
	Similarity        float64  `json:"similarity"`
	MatchType         string   `json:"matchType"`
}

// Match types.
const (
	MatchExact  = "exact"
	MatchAlias  = "alias"
	MatchVector = "vector"
)

// BuiltinLibrary returns the curated concept set compiled into the binary.
// Operators can extend it with a YAML file; see LoadLibraryFile.
func BuiltinLibrary() []Concept {
	return []Concept{
		{
			ID:          "ramp",
			Aliases:     []string{"ramp", "mana ramp", "mana dork", "mana rock", "mana acceleration"},
			Templates:   []string{"otag:ramp"},
			Description: "cards that accelerate your mana",
			Category:    "mana",
			Priority:    8,
		},
		{
			ID:                "board_wipe",
			Aliases:           []string{"board wipe", "mass removal", "destroy all creatures", "destroy everything"},
			Templates:         []string{"otag:board-wipe"},
			NegativeTemplates: []string{"-otag:single-target"},
			Description:       "mass removal that clears the battlefield",
			Category:          "removal",
			Priority:          9,
		},
		{
			ID:          "removal",
			Aliases:     []string{"removal", "spot removal", "kill spell"},
			Templates:   []string{"otag:removal"},
			Description: "cards that destroy or exile a threat",
			Category:    "removal",
			Priority:    7,
		},
		{
			ID:          "counterspell",
			Aliases:     []string{"counterspell", "counter magic", "permission"},
			Templates:   []string{"t:instant o:\"counter target\""},
			Description: "spells that counter other spells",
			Category:    "control",
			Priority:    8,
		},
		{
			ID:          "card_draw",
			Aliases:     []string{"card draw", "draw spells", "cantrip"},
			Templates:   []string{"otag:card-advantage o:\"draw\""},
			Description: "cards that draw more cards",
			Category:    "advantage",
			Priority:    7,
		},
		{
			ID:          "tutor",
			Aliases:     []string{"tutor", "search library", "fetch a card"},
			Templates:   []string{"otag:tutor"},
			Description: "cards that search your library",
			Category:    "advantage",
			Priority:    8,
		},
		{
			ID:          "burn",
			Aliases:     []string{"burn", "direct damage"},
			Templates:   []string{"otag:burn"},
			Description: "spells that deal damage to any target",
			Category:    "aggro",
			Priority:    6,
		},
		{
			ID:          "lifegain",
			Aliases:     []string{"lifegain", "life gain", "gain life"},
			Templates:   []string{"o:\"gain\" o:\"life\""},
			Description: "cards that gain you life",
			Category:    "defense",
			Priority:    5,
		},
		{
			ID:          "mill",
			Aliases:     []string{"mill", "self mill"},
			Templates:   []string{"otag:mill"},
			Description: "cards that put library cards into the graveyard",
			Category:    "alternate-win",
			Priority:    6,
		},
		{
			ID:          "discard",
			Aliases:     []string{"discard", "hand disruption"},
			Templates:   []string{"otag:discard"},
			Description: "cards that make opponents discard",
			Category:    "control",
			Priority:    6,
		},
		{
			ID:          "token_generation",
			Aliases:     []string{"token", "token generator", "make tokens", "go wide"},
			Templates:   []string{"otag:token-generator"},
			Description: "cards that create creature tokens",
			Category:    "aggro",
			Priority:    6,
		},
		{
			ID:          "graveyard_recursion",
			Aliases:     []string{"recursion", "reanimation", "reanimate", "graveyard recursion"},
			Templates:   []string{"otag:recursion"},
			Description: "cards that return things from the graveyard",
			Category:    "value",
			Priority:    6,
		},
		{
			ID:                "graveyard_hate",
			Aliases:           []string{"graveyard hate", "grave hate"},
			Templates:         []string{"otag:graveyard-hate"},
			NegativeTemplates: []string{"-otag:recursion"},
			Description:       "cards that empty or lock opposing graveyards",
			Category:          "hate",
			Priority:          6,
		},
		{
			ID:          "blink",
			Aliases:     []string{"blink", "flicker"},
			Templates:   []string{"otag:blink"},
			Description: "cards that exile and return permanents for value",
			Category:    "value",
			Priority:    5,
		},
		{
			ID:          "sacrifice_outlet",
			Aliases:     []string{"sacrifice outlet", "sac outlet"},
			Templates:   []string{"otag:sacrifice-outlet"},
			Description: "free or cheap ways to sacrifice your own permanents",
			Category:    "combo",
			Priority:    5,
		},
		{
			ID:          "land_destruction",
			Aliases:     []string{"land destruction", "land hate"},
			Templates:   []string{"otag:land-destruction"},
			Description: "cards that destroy lands",
			Category:    "hate",
			Priority:    4,
		},
		{
			ID:          "stax",
			Aliases:     []string{"stax", "tax effects"},
			Templates:   []string{"otag:stax"},
			Description: "asymmetric resource denial",
			Category:    "control",
			Priority:    4,
		},
		{
			ID:          "utility_land",
			Aliases:     []string{"utility land"},
			Templates:   []string{"t:land -t:basic otag:utility-land"},
			Description: "nonbasic lands with abilities beyond mana",
			Category:    "mana",
			Priority:    5,
		},
		{
			ID:          "anthem",
			Aliases:     []string{"anthem", "pump effects", "lord"},
			Templates:   []string{"otag:anthem"},
			Description: "static effects that buff your whole team",
			Category:    "aggro",
			Priority:    4,
		},
		{
			ID:          "protection",
			Aliases:     []string{"protection", "hexproof granting"},
			Templates:   []string{"otag:protection-granting"},
			Description: "cards that protect your other cards",
			Category:    "defense",
			Priority:    4,
		},
	}
}

// KnownTags collects every otag used by the library, for the repair pass
// that strips unknown tags.
func KnownTags(library []Concept) map[string]bool {
	tags := make(map[string]bool)
	for _, c := range library {
		for _, tpl := range append(append([]string{}, c.Templates...), c.NegativeTemplates...) {
			collectTags(tpl, tags)
		}
	}
	return tags
}

func collectTags(template string, into map[string]bool) {
	for _, tok := range splitTemplate(template) {
		if len(tok) > 5 && tok[:5] == "otag:" {
			into[tok[5:]] = true
		}
		if len(tok) > 6 && tok[:6] == "-otag:" {
			into[tok[6:]] = true
		}
	}
}

func splitTemplate(template string) []string {
	var out []string
	field := ""
	inQuote := false
	for _, r := range template {
		switch {
		case r == '"':
			inQuote = !inQuote
			field += string(r)
		case r == ' ' && !inQuote:
			if field != "" {
				out = append(out, field)
				field = ""
			}
		default:
			field += string(r)
		}
	}
	if field != "" {
		out = append(out, field)
	}
	return out
}
