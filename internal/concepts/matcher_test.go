package concepts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMatchExactAlias(t *testing.T) {
	m := NewMatcher(BuiltinLibrary(), nil, false)

	matches := m.Match(context.Background(), "board wipe", 5, 0.7)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	got := matches[0]
	if got.ConceptID != "board_wipe" {
		t.Errorf("expected board_wipe, got %s", got.ConceptID)
	}
	if got.Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %f", got.Confidence)
	}
	if got.MatchType != MatchExact {
		t.Errorf("expected match type %s, got %s", MatchExact, got.MatchType)
	}
	if len(got.NegativeTemplates) == 0 {
		t.Error("expected board_wipe to carry a negative template")
	}
}

func TestMatchLongestAliasWins(t *testing.T) {
	m := NewMatcher(BuiltinLibrary(), nil, false)

	matches := m.Match(context.Background(), "mana ramp", 5, 0.7)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Pattern != "mana ramp" {
		t.Errorf("expected pattern %q, got %q", "mana ramp", matches[0].Pattern)
	}
}

func TestMatchGraveyardHateDirectAlias(t *testing.T) {
	// matched through the concept alias, without any synonym rewrite
	m := NewMatcher(BuiltinLibrary(), nil, false)

	matches := m.Match(context.Background(), "graveyard hate", 5, 0.7)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].ConceptID != "graveyard_hate" {
		t.Errorf("expected graveyard_hate, got %s", matches[0].ConceptID)
	}
}

func TestMatchWholeWordsOnly(t *testing.T) {
	m := NewMatcher(BuiltinLibrary(), nil, false)

	// "millstone" must not trigger the mill concept
	if matches := m.Match(context.Background(), "millstone art", 5, 0.7); len(matches) != 0 {
		t.Errorf("expected no matches for embedded alias, got %+v", matches)
	}
}

func TestMatchEmptyResidual(t *testing.T) {
	m := NewMatcher(BuiltinLibrary(), nil, false)
	if matches := m.Match(context.Background(), "   ", 5, 0.7); matches != nil {
		t.Errorf("expected nil for blank residual, got %+v", matches)
	}
}

func TestMatchOrdering(t *testing.T) {
	library := []Concept{
		{ID: "low", Aliases: []string{"alpha"}, Templates: []string{"otag:low"}, Priority: 2},
		{ID: "high", Aliases: []string{"beta"}, Templates: []string{"otag:high"}, Priority: 9},
	}
	m := NewMatcher(library, nil, false)

	matches := m.Match(context.Background(), "alpha beta", 5, 0.7)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	// equal similarity, so priority breaks the tie
	if matches[0].ConceptID != "high" || matches[1].ConceptID != "low" {
		t.Errorf("expected [high low], got [%s %s]", matches[0].ConceptID, matches[1].ConceptID)
	}
}

func TestMatchMaxMatches(t *testing.T) {
	m := NewMatcher(BuiltinLibrary(), nil, false)

	matches := m.Match(context.Background(), "ramp removal tutor", 2, 0.7)
	if len(matches) != 2 {
		t.Fatalf("expected truncation to 2 matches, got %d", len(matches))
	}
}

type fakeStore struct {
	matches []Match
	err     error
	closed  bool
}

func (f *fakeStore) Lookup(ctx context.Context, term string) ([]Match, error) {
	return f.matches, f.err
}

func (f *fakeStore) Close() error {
	f.closed = true
	return nil
}

func TestMatchStoreErrorIsSwallowed(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	m := NewMatcher(BuiltinLibrary(), store, false)

	matches := m.Match(context.Background(), "board wipe", 5, 0.7)
	if len(matches) != 1 || matches[0].ConceptID != "board_wipe" {
		t.Fatalf("expected exact match to survive store failure, got %+v", matches)
	}
}

func TestMatchStoreSupplementsExact(t *testing.T) {
	store := &fakeStore{matches: []Match{
		{ConceptID: "stax", Pattern: "staxy", Templates: []string{"otag:stax"}, Similarity: 0.6},
	}}
	m := NewMatcher(BuiltinLibrary(), store, false)

	matches := m.Match(context.Background(), "staxy lockdown", 5, 0.7)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match from store, got %d", len(matches))
	}
	got := matches[0]
	if got.ConceptID != "stax" {
		t.Errorf("expected stax, got %s", got.ConceptID)
	}
	if got.Confidence != 0.8 {
		t.Errorf("expected defaulted confidence 0.8, got %f", got.Confidence)
	}
	if got.MatchType != MatchAlias {
		t.Errorf("expected defaulted match type %s, got %s", MatchAlias, got.MatchType)
	}
}

func TestMatchStoreDoesNotDuplicateExact(t *testing.T) {
	store := &fakeStore{matches: []Match{
		{ConceptID: "ramp", Pattern: "ramp", Templates: []string{"otag:ramp"}, Similarity: 0.9},
	}}
	m := NewMatcher(BuiltinLibrary(), store, false)

	matches := m.Match(context.Background(), "ramp", 5, 0.7)
	if len(matches) != 1 {
		t.Fatalf("expected dedupe to 1 match, got %d", len(matches))
	}
	if matches[0].MatchType != MatchExact {
		t.Errorf("exact match should win over store row, got %s", matches[0].MatchType)
	}
}

func TestMatchMinConfidence(t *testing.T) {
	store := &fakeStore{matches: []Match{
		{ConceptID: "stax", Pattern: "staxy", Templates: []string{"otag:stax"}, Confidence: 0.5, Similarity: 0.5, MatchType: MatchVector},
	}}
	m := NewMatcher(BuiltinLibrary(), store, false)

	if matches := m.Match(context.Background(), "staxy", 5, 0.7); len(matches) != 0 {
		t.Errorf("expected low-confidence store row to be filtered, got %+v", matches)
	}
}

func TestKnownTags(t *testing.T) {
	tags := KnownTags(BuiltinLibrary())
	for _, want := range []string{"ramp", "board-wipe", "single-target", "utility-land"} {
		if !tags[want] {
			t.Errorf("expected known tag %q", want)
		}
	}
	if tags["counter target"] {
		t.Error("quoted oracle text must not leak into the tag set")
	}
}

func TestLoadLibraryFileMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concepts.yaml")
	yaml := `concepts:
  - id: ramp
    aliases: ["ramp", "acceleration"]
    templates: ["otag:ramp", "otag:mana-rock"]
    description: overridden
    category: mana
    priority: 9
  - id: voltron
    aliases: ["voltron"]
    templates: ["otag:voltron"]
    description: single big attacker
    category: aggro
    priority: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	base := BuiltinLibrary()
	merged, err := LoadLibraryFile(base, path)
	if err != nil {
		t.Fatalf("LoadLibraryFile: %v", err)
	}
	if len(merged) != len(base)+1 {
		t.Fatalf("expected %d concepts, got %d", len(base)+1, len(merged))
	}

	var ramp *Concept
	for i := range merged {
		if merged[i].ID == "ramp" {
			ramp = &merged[i]
		}
	}
	if ramp == nil || ramp.Description != "overridden" {
		t.Errorf("expected ramp to be replaced by file entry, got %+v", ramp)
	}
	if merged[len(merged)-1].ID != "voltron" {
		t.Errorf("expected voltron appended, got %s", merged[len(merged)-1].ID)
	}
}

func TestLoadLibraryFileRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("concepts:\n  - id: broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLibraryFile(BuiltinLibrary(), path); err == nil {
		t.Error("expected error for concept without templates")
	}
}
