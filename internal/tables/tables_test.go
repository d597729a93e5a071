package tables

import "testing"

func TestGuildNamesResolveToKnownColors(t *testing.T) {
	for name, letters := range GuildNames {
		if len(letters) < 2 {
			t.Errorf("guild %q has fewer than two colors", name)
		}
		for _, l := range letters {
			found := false
			for _, c := range ColorOrder {
				if c == l {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("guild %q contains unknown color letter %q", name, l)
			}
		}
	}
}

func TestSortColors(t *testing.T) {
	got := SortColors([]string{"b", "w", "u", "b"})
	want := []string{"w", "u", "b"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAreExclusiveTypes(t *testing.T) {
	if !AreExclusiveTypes("instant", "sorcery") {
		t.Error("instant and sorcery should be exclusive")
	}
	if !AreExclusiveTypes("sorcery", "instant") {
		t.Error("exclusivity should be order-insensitive")
	}
	if AreExclusiveTypes("artifact", "creature") {
		t.Error("artifact creatures exist; pair must not be exclusive")
	}
	if AreExclusiveTypes("land", "artifact") {
		t.Error("artifact lands exist; pair must not be exclusive")
	}
}

func TestSingularType(t *testing.T) {
	cases := map[string]string{
		"creatures": "creature",
		"sorceries": "sorcery",
		"elves":     "elf",
		"lands":     "land",
		"goblins":   "goblin",
		"creature":  "creature",
		"dragons":   "dragon",
		"nonsense":  "nonsense",
	}
	for in, want := range cases {
		if got := SingularType(in); got != want {
			t.Errorf("SingularType(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestSynonymValuesAreNotKeys(t *testing.T) {
	// Idempotency of normalization depends on this.
	for k, v := range Synonyms {
		if _, clash := Synonyms[v]; clash {
			t.Errorf("synonym value %q (for key %q) is itself a key", v, k)
		}
	}
}
