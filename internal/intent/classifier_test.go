package intent

import "testing"

func TestClassifyDefaultsToFindCards(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("mono red creatures")
	if got.Mode != ModeFindCards {
		t.Errorf("expected find_cards, got %s", got.Mode)
	}
}

func TestClassifyModes(t *testing.T) {
	c := NewClassifier()
	cases := map[string]string{
		"how does cascade work":                  ModeRulesQuestion,
		"what happens when both creatures die":   ModeRulesQuestion,
		"help me build a deck around dragons":    ModeDeckHelp,
		"what should i add to my commander deck": ModeDeckHelp,
		"card called lightning bolt":             ModeFindByName,
		"budget board wipe under usd<5":          ModeFindCards,
	}
	for in, want := range cases {
		if got := c.Classify(in); got.Mode != want {
			t.Errorf("Classify(%q): expected mode %s, got %s", in, want, got.Mode)
		}
	}
}

func TestClassifyNameCandidate(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("card called lightning bolt")
	if !got.IsCardNameSearch {
		t.Fatal("expected card name search")
	}
	if got.CardNameCandidate != "lightning bolt" {
		t.Errorf("expected candidate 'lightning bolt', got %q", got.CardNameCandidate)
	}
}

func TestClassifyFunctionsSortedAndUnique(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("board wipe with lifegain and more lifegain")
	seen := make(map[string]bool)
	last := 2.0
	for _, f := range got.Functions {
		if seen[f.Function] {
			t.Errorf("duplicate function %s", f.Function)
		}
		seen[f.Function] = true
		if f.Confidence > last {
			t.Errorf("functions not sorted by confidence descending")
		}
		last = f.Confidence
	}
	if !seen["board_wipe"] || !seen["lifegain"] {
		t.Errorf("expected board_wipe and lifegain, got %+v", got.Functions)
	}
}

func TestAmbiguityDetector(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("counterspell")
	if !got.Ambiguous {
		t.Fatal("single overloaded token should be ambiguous")
	}
	if len(got.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got.Suggestions))
	}

	got = c.Classify("goblins")
	if !got.Ambiguous {
		t.Error("tribal name should be ambiguous")
	}

	// must not fire on queries longer than two words
	got = c.Classify("cheap counterspell for my modern deck")
	if got.Ambiguous {
		t.Error("long query must not be flagged ambiguous")
	}

	got = c.Classify("mono red creatures")
	if got.Ambiguous {
		t.Error("ordinary query must not be flagged ambiguous")
	}
}
