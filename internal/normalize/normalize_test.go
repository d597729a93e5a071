package normalize

import (
	"strings"
	"testing"
)

func TestNormalizeLowercasesAndCollapses(t *testing.T) {
	nq := Normalize("  Budget   BOARD Wipes ")
	if nq.Normalized != "budget board wipe" {
		t.Errorf("expected 'budget board wipe', got %q", nq.Normalized)
	}
	if nq.Original != "  Budget   BOARD Wipes " {
		t.Errorf("original must be preserved verbatim")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"budget board wipes under $5",
		"Mono Red creatures with CMC three or less",
		"utility lands for commander in esper under five dollars",
		"counterspells that cost two mana or less",
		"cards “like” this",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once.Normalized)
		if once.Normalized != twice.Normalized {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once.Normalized, twice.Normalized)
		}
	}
}

func TestNormalizeComparisonPhrases(t *testing.T) {
	cases := map[string]string{
		"under $5":                 "usd<5",
		"removal under 3 dollars":  "removal usd<3",
		"over $20":                 "usd>20",
		"$10 or less":              "usd<=10",
		"mana value 3 or less":     "mana value<=3",
		"creatures 2 mana or less": "creatures mana value<=2",
		"under 4 mana":             "mana value<4",
	}
	for in, want := range cases {
		got := Normalize(in).Normalized
		if got != want {
			t.Errorf("Normalize(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestNormalizeNumberWords(t *testing.T) {
	nq := Normalize("creatures with power four or more")
	if !strings.Contains(nq.Normalized, "4") {
		t.Errorf("expected digit substitution, got %q", nq.Normalized)
	}
	if len(nq.NumberMappings) != 1 || nq.NumberMappings[0].Word != "four" {
		t.Errorf("expected number mapping for 'four', got %+v", nq.NumberMappings)
	}
}

func TestNormalizeRecordsGuildNames(t *testing.T) {
	nq := Normalize("utility lands in esper")
	if len(nq.ColorMappings) != 1 || nq.ColorMappings[0].Name != "esper" {
		t.Fatalf("expected esper color mapping, got %+v", nq.ColorMappings)
	}
	// detection only; the text keeps the name for the color extractor
	if !strings.Contains(nq.Normalized, "esper") {
		t.Errorf("guild name should remain in normalized text, got %q", nq.Normalized)
	}
}

func TestNormalizePreservesQuotedPhrases(t *testing.T) {
	nq := Normalize(`cards with "enters the battlefield tapped"`)
	if len(nq.PreservedPhrases) != 1 {
		t.Fatalf("expected one preserved phrase, got %d", len(nq.PreservedPhrases))
	}
	if nq.PreservedPhrases[0] != "enters the battlefield tapped" {
		t.Errorf("unexpected preserved phrase %q", nq.PreservedPhrases[0])
	}
}

func TestNormalizeExpandsShorthand(t *testing.T) {
	nq := Normalize("cmc under 3 etb effects")
	if !strings.Contains(nq.Normalized, "mana value") {
		t.Errorf("cmc should expand to mana value, got %q", nq.Normalized)
	}
	if !strings.Contains(nq.Normalized, "enters the battlefield") {
		t.Errorf("etb should expand, got %q", nq.Normalized)
	}
}

func TestIsRawSyntax(t *testing.T) {
	raw := []string{
		`t:creature ci:r`,
		`o:"draw a card" mv<=2`,
		`(t:artifact or t:land) f:commander`,
		`!"Lightning Bolt"`,
		`f:modern usd<5`,
	}
	for _, q := range raw {
		if !IsRawSyntax(q) {
			t.Errorf("expected raw syntax: %q", q)
		}
	}
	natural := []string{
		"budget board wipes under $5",
		"mono red creatures",
		"usd<5", // lone normalizer rewrite is still natural language context
		"",
	}
	for _, q := range natural {
		if IsRawSyntax(q) {
			t.Errorf("expected natural language: %q", q)
		}
	}
}
