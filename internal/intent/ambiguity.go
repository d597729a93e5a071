package intent

import "strings"

// overloadedTerm is a one-or-two word query that reads as both a specific
// card name and a broader category, with two literal query suggestions the
// caller can present as disambiguation.
type overloadedTerm struct {
	nameQuery     string
	categoryQuery string
}

func defaultOverloadedTerms() map[string]overloadedTerm {
	return map[string]overloadedTerm{
		// famous cards that are also category names
		"counterspell":   {`!"Counterspell"`, `otag:counterspell`},
		"board wipe":     {`!"Wrath of God"`, `otag:board-wipe`},
		"ponder":         {`!"Ponder"`, `o:"look at the top"`},
		"opt":            {`!"Opt"`, `o:"scry 1"`},
		"shock":          {`!"Shock"`, `otag:removal mv<=1`},
		"duress":         {`!"Duress"`, `otag:discard`},
		"fog":            {`!"Fog"`, `otag:fog`},
		"rampant growth": {`!"Rampant Growth"`, `otag:ramp`},
		// tribes that are both a creature type and a strategy
		"goblins":  {`t:goblin`, `otag:tribal o:"goblin"`},
		"elves":    {`t:elf`, `otag:tribal o:"elf"`},
		"zombies":  {`t:zombie`, `otag:tribal o:"zombie"`},
		"slivers":  {`t:sliver`, `otag:tribal o:"sliver"`},
		"vampires": {`t:vampire`, `otag:tribal o:"vampire"`},
		"dragons":  {`t:dragon`, `otag:tribal o:"dragon"`},
	}
}

// detectAmbiguity flags a short query made of a single overloaded term and
// fills in two literal alternatives. Never fires past two words: longer
// queries carry enough context to disambiguate themselves.
func (c *Classifier) detectAmbiguity(text string, out *ClassifiedIntent) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || len(strings.Fields(trimmed)) > 2 {
		return
	}
	if term, ok := c.overloaded[trimmed]; ok {
		out.Ambiguous = true
		out.Suggestions = []string{term.nameQuery, term.categoryQuery}
	}
}
