package tables

// Synonyms rewrites whole words and short phrases to the vocabulary the rest
// of the compiler matches against. Replacement values must never themselves
// be keys, otherwise normalization stops being idempotent.
var Synonyms = map[string]string{
	// shorthand
	"cmc":        "mana value",
	"mv":         "mana value",
	"etb":        "enters the battlefield",
	"ltb":        "leaves the battlefield",
	"evasion":    "unblockable",
	"cantrips":   "cantrip",
	"wipes":      "wipe",
	"boardwipe":  "board wipe",
	"boardwipes": "board wipe",
	"wrath":      "board wipe",
	"wraths":     "board wipe",
	"sweeper":    "board wipe",
	"sweepers":   "board wipe",
	"counterspells": "counterspell",
	"counter magic": "counterspell",
	"countermagic":  "counterspell",
	"tutors":     "tutor",
	"dork":       "mana dork",
	"dorks":      "mana dork",
	"rock":       "mana rock",
	"rocks":      "mana rock",
	"mono color": "mono",
	"monocolor":  "mono",
	"monocolored": "mono",
	"mana cost":  "mana value",
	"converted mana cost": "mana value",
	// casual phrasings
	"kill spell":  "removal",
	"kill spells": "removal",
	"creature removal": "removal",
	"draw power":  "card draw",
	"card advantage": "card draw",
	"go wide":     "token",
}
