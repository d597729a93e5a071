package intent

import "regexp"

func defaultModeRules() []modeRule {
	return []modeRule{
		{ModeRulesQuestion, 0.95, regexp.MustCompile(`\b(?:how (?:does|do|did)|what happens (?:when|if)|why (?:does|do|can)|ruling|rulings|stack interaction|does .+ trigger|can i respond)\b`)},
		{ModeRulesQuestion, 0.8, regexp.MustCompile(`\b(?:legal in|is .+ banned|restricted list)\b`)},
		{ModeDeckHelp, 0.9, regexp.MustCompile(`\b(?:build (?:a|my) deck|deck ?building|improve my deck|upgrade my deck|what should i (?:add|cut|play)|suggestions? for my)\b`)},
		{ModeDeckHelp, 0.75, regexp.MustCompile(`\b(?:my (?:commander|edh|standard|modern) deck)\b`)},
		{ModeFindByName, 0.9, regexp.MustCompile(`\b(?:card (?:called|named)|a card (?:called|named)|what is the card)\b`)},
		{ModeFindByName, 0.7, regexp.MustCompile(`^"[^"]+"$`)},
	}
}

func defaultFunctionRules() []functionRule {
	return []functionRule{
		{"ramp", 0.9, regexp.MustCompile(`\b(?:ramp|mana dork|mana rock|add(?:s)? mana|extra lands?|land(?:fall)? ramp)\b`)},
		{"removal", 0.9, regexp.MustCompile(`\b(?:removal|destroy target|exile target|kill(?:s)? (?:a |any )?creature)\b`)},
		{"board_wipe", 0.95, regexp.MustCompile(`\b(?:board wipe|mass removal|destroy all|clear the board)\b`)},
		{"counterspell", 0.9, regexp.MustCompile(`\b(?:counterspell|counter (?:target|a|any) spell|permission)\b`)},
		{"card_draw", 0.85, regexp.MustCompile(`\b(?:card draw|draw (?:a |two |more )?cards?|cantrip)\b`)},
		{"tutor", 0.85, regexp.MustCompile(`\b(?:tutor|search (?:your|their|my) library)\b`)},
		{"burn", 0.8, regexp.MustCompile(`\b(?:burn|direct damage|deal(?:s)? \d* ?damage)\b`)},
		{"lifegain", 0.8, regexp.MustCompile(`\b(?:lifegain|gain(?:s)? life|life gain)\b`)},
		{"mill", 0.85, regexp.MustCompile(`\b(?:mill|graveyard from (?:the top of )?(?:their|your) library)\b`)},
		{"discard", 0.8, regexp.MustCompile(`\b(?:discard|hand disruption|thoughtseize effect)\b`)},
		{"token", 0.8, regexp.MustCompile(`\b(?:tokens?|create(?:s)? (?:a|two|x) .+ token)\b`)},
		{"graveyard", 0.75, regexp.MustCompile(`\b(?:graveyard recursion|reanimat(?:e|ion|or)|return .+ from (?:the|your) graveyard)\b`)},
		{"protection", 0.7, regexp.MustCompile(`\b(?:protection|hexproof|indestructible|ward)\b`)},
		{"evasion", 0.7, regexp.MustCompile(`\b(?:unblockable|flying|menace|can't be blocked)\b`)},
		{"stax", 0.7, regexp.MustCompile(`\b(?:stax|tax(?:es)? effects?|players can't)\b`)},
		{"combo", 0.65, regexp.MustCompile(`\b(?:combo|infinite (?:mana|tokens|damage|turns))\b`)},
	}
}
