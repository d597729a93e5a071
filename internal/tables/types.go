package tables

// CardTypes is the vocabulary of top-level card types the type extractor
// recognizes. Supertypes that behave like types in search syntax (basic,
// legendary, snow) are included because players phrase them the same way.
var CardTypes = map[string]bool{
	"creature":     true,
	"artifact":     true,
	"enchantment":  true,
	"instant":      true,
	"sorcery":      true,
	"land":         true,
	"planeswalker": true,
	"battle":       true,
	"kindred":      true,
	"legendary":    true,
	"basic":        true,
	"snow":         true,
}

// Subtypes lists the creature tribes, land categories and object subtypes
// players actually search for. Not exhaustive; rare subtypes fall through to
// free text, which still finds them via o:"...".
var Subtypes = map[string]bool{
	// creature tribes
	"angel": true, "demon": true, "dragon": true, "elf": true, "goblin": true,
	"zombie": true, "vampire": true, "wizard": true, "warrior": true,
	"soldier": true, "merfolk": true, "human": true, "spirit": true,
	"sliver": true, "eldrazi": true, "elemental": true, "beast": true,
	"cat": true, "bird": true, "dinosaur": true, "pirate": true,
	"knight": true, "rogue": true, "cleric": true, "druid": true,
	"shaman": true, "giant": true, "hydra": true, "phoenix": true,
	"rat": true, "snake": true, "spider": true, "squirrel": true,
	"treefolk": true, "wolf": true, "wurm": true, "faerie": true,
	"ninja": true, "samurai": true, "horror": true, "god": true,
	// object subtypes
	"equipment": true, "aura": true, "vehicle": true, "saga": true,
	"food": true, "clue": true, "treasure": true,
	// land categories
	"gate": true, "desert": true, "plains": true, "island": true,
	"swamp": true, "mountain": true, "forest": true,
}

// TypeTargetPhrases are phrases where a type word names the target of an
// effect, not a filter on the result set. "equipped creature" describes what
// an equipment does; the user is searching for equipment, not creatures.
var TypeTargetPhrases = []string{
	"equipped creature",
	"enchanted creature",
	"target creature",
	"enchanted permanent",
	"target permanent",
	"equipped creatures",
	"target creatures",
}

// ExclusiveTypePairs lists type pairs no single card satisfies when required
// together. Artifact creatures, enchantment creatures and artifact lands are
// real, so those combinations are deliberately absent.
var ExclusiveTypePairs = [][2]string{
	{"instant", "sorcery"},
	{"instant", "creature"},
	{"instant", "artifact"},
	{"instant", "enchantment"},
	{"instant", "land"},
	{"instant", "planeswalker"},
	{"sorcery", "creature"},
	{"sorcery", "artifact"},
	{"sorcery", "enchantment"},
	{"sorcery", "land"},
	{"sorcery", "planeswalker"},
	{"land", "creature"},
	{"land", "planeswalker"},
}

// AreExclusiveTypes reports whether a and b can never appear together on one
// card. Order-insensitive.
func AreExclusiveTypes(a, b string) bool {
	for _, pair := range ExclusiveTypePairs {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// SingularType reduces a plural surface form to the singular vocabulary
// entry ("creatures" -> "creature", "sorceries" -> "sorcery"). Returns the
// input unchanged when no plural rule applies.
func SingularType(word string) string {
	if CardTypes[word] || Subtypes[word] {
		return word
	}
	switch {
	case word == "sorceries":
		return "sorcery"
	case word == "elves":
		return "elf"
	case word == "wolves":
		return "wolf"
	case word == "treefolks":
		return "treefolk"
	case len(word) > 3 && word[len(word)-3:] == "ies":
		candidate := word[:len(word)-3] + "y"
		if CardTypes[candidate] || Subtypes[candidate] {
			return candidate
		}
	case len(word) > 1 && word[len(word)-1] == 's':
		candidate := word[:len(word)-1]
		if CardTypes[candidate] || Subtypes[candidate] {
			return candidate
		}
	}
	return word
}

// IsCardType reports whether word (singular or plural) names a top-level
// card type.
func IsCardType(word string) bool {
	return CardTypes[SingularType(word)]
}

// IsSubtype reports whether word (singular or plural) names a known subtype.
func IsSubtype(word string) bool {
	return Subtypes[SingularType(word)]
}
