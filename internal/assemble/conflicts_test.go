package assemble

import (
	"strings"
	"testing"
)

func TestConflictSimpleTypeCoveredByOrGroup(t *testing.T) {
	res := DetectConflicts([]string{"t:artifact", "(t:artifact or t:land)", "mv<=3"})

	joined := strings.Join(res.Deduplicated, " ")
	if joined != "(t:artifact or t:land) mv<=3" {
		t.Errorf("expected simple clause dropped, got %q", joined)
	}
	if len(res.Conflicts) != 1 {
		t.Errorf("expected one conflict description, got %v", res.Conflicts)
	}
}

func TestConflictExclusivePairBecomesOrGroup(t *testing.T) {
	res := DetectConflicts([]string{"f:modern", "t:instant", "t:sorcery", "mv<=2"})

	joined := strings.Join(res.Deduplicated, " ")
	if joined != "f:modern (t:instant or t:sorcery) mv<=2" {
		t.Errorf("expected exclusive pair rewritten, got %q", joined)
	}
	if strings.Count(joined, "(") != 1 {
		t.Errorf("expected exactly one or-group, got %q", joined)
	}
}

func TestConflictValidTypePairUntouched(t *testing.T) {
	toks := []string{"t:artifact", "t:creature"}
	res := DetectConflicts(toks)

	joined := strings.Join(res.Deduplicated, " ")
	if joined != "t:artifact t:creature" {
		t.Errorf("artifact creatures are a real combination, got %q", joined)
	}
	if len(res.Conflicts) != 0 {
		t.Errorf("expected no conflicts, got %v", res.Conflicts)
	}
}

func TestConflictDuplicateOrGroups(t *testing.T) {
	res := DetectConflicts([]string{"(t:land or t:artifact)", "(t:artifact or t:land)"})

	if len(res.Deduplicated) != 1 {
		t.Errorf("expected one surviving group, got %v", res.Deduplicated)
	}
}

func TestConflictTagContradiction(t *testing.T) {
	res := DetectConflicts([]string{"otag:ramp", "-otag:ramp", "f:commander"})

	joined := strings.Join(res.Deduplicated, " ")
	if joined != "otag:ramp f:commander" {
		t.Errorf("expected negative tag dropped, got %q", joined)
	}
	for _, tok := range res.Deduplicated {
		if strings.HasPrefix(tok, "-otag:") {
			t.Errorf("contradicted negative tag survived: %v", res.Deduplicated)
		}
	}
}

func TestConflictExactDuplicates(t *testing.T) {
	res := DetectConflicts([]string{"t:creature", "T:Creature", "mv<=3"})

	if len(res.Deduplicated) != 2 {
		t.Errorf("expected case-insensitive dedupe, got %v", res.Deduplicated)
	}
}

func TestConflictNegationWins(t *testing.T) {
	res := DetectConflicts([]string{"t:basic", "-t:basic", "t:land"})

	joined := strings.Join(res.Deduplicated, " ")
	if joined != "-t:basic t:land" {
		t.Errorf("expected explicit negation to win, got %q", joined)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("expected a warning, got %v", res.Warnings)
	}
}

func TestConflictCleanQueryPassesThrough(t *testing.T) {
	toks := []string{"f:commander", "ci<=wub", "t:land", "-t:basic", "usd<5"}
	res := DetectConflicts(toks)

	if len(res.Deduplicated) != len(toks) {
		t.Errorf("expected clean query untouched, got %v", res.Deduplicated)
	}
	if len(res.Conflicts) != 0 || len(res.Warnings) != 0 {
		t.Errorf("expected no findings, got %v / %v", res.Conflicts, res.Warnings)
	}
}
