// Package tables holds the static vocabulary the query compiler matches
// against: color names, card types, formats, rarities, price slang and the
// synonym map. Everything here is initialized at process start and treated
// as read-only afterwards.
package tables

// ColorNames maps spoken color words to their single-letter codes.
var ColorNames = map[string]string{
	"white":      "w",
	"blue":       "u",
	"black":      "b",
	"red":        "r",
	"green":      "g",
	"colorless":  "c",
	"multicolor": "m",
}

// GuildNames maps every two-color guild, three-color shard and wedge name to
// its color-letter set. These are Commander vocabulary, so matches always
// resolve to color identity rather than printed color.
var GuildNames = map[string][]string{
	// guilds
	"azorius":  {"w", "u"},
	"dimir":    {"u", "b"},
	"rakdos":   {"b", "r"},
	"gruul":    {"r", "g"},
	"selesnya": {"g", "w"},
	"orzhov":   {"w", "b"},
	"izzet":    {"u", "r"},
	"golgari":  {"b", "g"},
	"boros":    {"r", "w"},
	"simic":    {"g", "u"},
	// shards
	"bant":    {"g", "w", "u"},
	"esper":   {"w", "u", "b"},
	"grixis":  {"u", "b", "r"},
	"jund":    {"b", "r", "g"},
	"naya":    {"r", "g", "w"},
	// wedges
	"abzan":  {"w", "b", "g"},
	"jeskai": {"u", "r", "w"},
	"sultai": {"b", "g", "u"},
	"mardu":  {"r", "w", "b"},
	"temur":  {"g", "u", "r"},
	// four and five color
	"four color": {"w", "u", "b", "r"},
	"five color": {"w", "u", "b", "r", "g"},
	"rainbow":    {"w", "u", "b", "r", "g"},
	"wubrg":      {"w", "u", "b", "r", "g"},
}

// ColorOrder is the canonical WUBRG ordering used when joining letter sets
// into a query clause.
var ColorOrder = []string{"w", "u", "b", "r", "g", "c"}

// SortColors returns the letters of set ordered canonically (WUBRG), with
// duplicates removed.
func SortColors(letters []string) []string {
	seen := make(map[string]bool, len(letters))
	for _, l := range letters {
		seen[l] = true
	}
	out := make([]string, 0, len(letters))
	for _, l := range ColorOrder {
		if seen[l] {
			out = append(out, l)
		}
	}
	return out
}
