package tables

// FormatAliases maps every spoken name of a play format to its canonical
// search token.
var FormatAliases = map[string]string{
	"standard":       "standard",
	"pioneer":        "pioneer",
	"modern":         "modern",
	"legacy":         "legacy",
	"vintage":        "vintage",
	"commander":      "commander",
	"edh":            "commander",
	"cedh":           "commander",
	"brawl":          "brawl",
	"pauper":         "pauper",
	"penny":          "penny",
	"penny dreadful": "penny",
	"historic":       "historic",
	"alchemy":        "alchemy",
	"explorer":       "explorer",
	"timeless":       "timeless",
	"oathbreaker":    "oathbreaker",
	"duel commander": "duel",
	"old school":     "oldschool",
	"premodern":      "premodern",
}

// RarityAliases maps rarity words, including the common two-word form, to
// canonical rarity tokens.
var RarityAliases = map[string]string{
	"common":      "common",
	"uncommon":    "uncommon",
	"rare":        "rare",
	"mythic":      "mythic",
	"mythic rare": "mythic",
	"mythics":     "mythic",
	"rares":       "rare",
	"commons":     "common",
	"uncommons":   "uncommon",
}

// SpecialTraits maps spoken phrases to is: traits.
var SpecialTraits = map[string]string{
	"reserved list":   "reserved",
	"reprint":         "reprint",
	"reprints":        "reprint",
	"first printing":  "firstprint",
	"full art":        "fullart",
	"foil":            "foil",
	"promo":           "promo",
	"commander legal": "commander",
	"fetchland":       "fetchland",
	"fetchlands":      "fetchland",
	"shockland":       "shockland",
	"shocklands":      "shockland",
	"dual land":       "dual",
	"dual lands":      "dual",
}
