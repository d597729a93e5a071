package scryfall

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 5*time.Second, false), server
}

func TestValidateOK(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "t:creature mv<=3" {
			t.Errorf("unexpected query param: %q", got)
		}
		fmt.Fprint(w, `{"total_cards": 412}`)
	})
	defer server.Close()

	res := client.Validate(context.Background(), "t:creature mv<=3", 1500)
	if !res.Valid {
		t.Error("expected valid result")
	}
	if res.TotalCards != 412 {
		t.Errorf("expected 412 cards, got %d", res.TotalCards)
	}
	if res.OverlyBroad || res.ZeroResults {
		t.Errorf("unexpected flags: %+v", res)
	}
}

func TestValidateOverlyBroad(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total_cards": 24000}`)
	})
	defer server.Close()

	res := client.Validate(context.Background(), "t:creature", 1500)
	if !res.Valid || !res.OverlyBroad {
		t.Errorf("expected valid but overly broad, got %+v", res)
	}
}

func TestValidateNotFoundMeansZeroResults(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	res := client.Validate(context.Background(), "t:creature t:land", 1500)
	if !res.Valid || !res.ZeroResults {
		t.Errorf("expected valid+zero, got %+v", res)
	}
}

func TestValidateBackendError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"details": "Invalid expression", "warnings": ["bad token"]}`)
	})
	defer server.Close()

	res := client.Validate(context.Background(), "t:creature ((", 1500)
	if res.Valid {
		t.Error("expected invalid result")
	}
	if res.Error != "Invalid expression" {
		t.Errorf("expected backend details surfaced, got %q", res.Error)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("expected warnings carried, got %v", res.Warnings)
	}
}

func TestValidateUnreachableIsNonFatal(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, false)

	res := client.Validate(context.Background(), "t:creature", 1500)
	if res.Valid {
		t.Error("expected invalid result for unreachable backend")
	}
	if res.Status != http.StatusInternalServerError || res.Error == "" {
		t.Errorf("expected synthetic 500 with error, got %+v", res)
	}
}

func TestSanitizeQuerySyntax(t *testing.T) {
	tests := []struct{ in, want string }{
		{"t:instant or or t:sorcery", "t:instant or t:sorcery"},
		{"( or t:instant)", "(t:instant)"},
		{"t:instant () mv<=2", "t:instant mv<=2"},
		{"(t:instant or )", "(t:instant)"},
		{"f:modern   t:goblin", "f:modern t:goblin"},
	}
	for _, tt := range tests {
		if got := SanitizeQuerySyntax(tt.in); got != tt.want {
			t.Errorf("SanitizeQuerySyntax(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairStripsUnknownTag(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("q"), "otag:bogus") {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"details": "unknown tag"}`)
			return
		}
		fmt.Fprint(w, `{"total_cards": 12}`)
	})
	defer server.Close()

	res := client.Repair(context.Background(), "t:creature otag:bogus", map[string]bool{"ramp": true}, 1500)
	if !res.Repaired {
		t.Fatalf("expected repair to succeed, got %+v", res)
	}
	if res.Query != "t:creature" {
		t.Errorf("expected bogus tag stripped, got %q", res.Query)
	}
	if !containsStr(res.Applied, "strip unknown tags") {
		t.Errorf("expected strategy recorded, got %v", res.Applied)
	}
}

func TestRepairFixesDoubledOr(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("q"), "or or") {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"details": "bad boolean"}`)
			return
		}
		fmt.Fprint(w, `{"total_cards": 3}`)
	})
	defer server.Close()

	res := client.Repair(context.Background(), "t:instant or or t:sorcery", nil, 1500)
	if !res.Repaired || res.Query != "t:instant or t:sorcery" {
		t.Errorf("expected doubled or collapsed, got %+v", res)
	}
	if len(res.Applied) != 1 {
		t.Errorf("expected repair to stop at first success, got %v", res.Applied)
	}
}

func TestRepairDropsSpeculativeConstraints(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("q"), "is:reprint") {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"details": "nope"}`)
			return
		}
		fmt.Fprint(w, `{"total_cards": 5}`)
	})
	defer server.Close()

	res := client.Repair(context.Background(), "t:goblin is:reprint", nil, 1500)
	if !res.Repaired || res.Query != "t:goblin" {
		t.Errorf("expected speculative clause dropped, got %+v", res)
	}
}

func TestRepairOracleLimitCountsQuotedTextOnly(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("q"), `o:"`) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"details": "oracle clause too long"}`)
			return
		}
		fmt.Fprint(w, `{"total_cards": 8}`)
	})
	defer server.Close()

	long := `t:creature o:"` + strings.Repeat("a", 40) + `"`
	res := client.Repair(context.Background(), long, nil, 1500)
	if !res.Repaired || res.Query != "t:creature" {
		t.Errorf("expected 40-char oracle text dropped, got %+v", res)
	}
	if !containsStr(res.Applied, "drop overlong oracle clause") {
		t.Errorf("expected strategy recorded, got %v", res.Applied)
	}

	short := `t:creature o:"` + strings.Repeat("a", 39) + `"`
	res = client.Repair(context.Background(), short, nil, 1500)
	if res.Repaired {
		t.Errorf("39-char oracle text must survive every strategy, got %+v", res)
	}
	if !strings.Contains(res.Query, strings.Repeat("a", 39)) {
		t.Errorf("expected short oracle clause kept, got %q", res.Query)
	}
}

func TestRepairFlattensDoubledOpeningParens(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("q"), "((") {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"details": "unbalanced parens"}`)
			return
		}
		fmt.Fprint(w, `{"total_cards": 4}`)
	})
	defer server.Close()

	res := client.Repair(context.Background(), "((t:instant or t:sorcery)", nil, 1500)
	if !res.Repaired || res.Query != "(t:instant or t:sorcery)" {
		t.Errorf("expected doubled opening paren flattened, got %+v", res)
	}

	// closing pairs belong to nested groups and must not be rewritten
	nested := "(t:creature (o:flying or o:haste))"
	res = client.Repair(context.Background(), nested, nil, 1500)
	if res.Query != nested {
		t.Errorf("nested closing parens must be left alone, got %q", res.Query)
	}
}

func TestRepairExhaustedKeepsBestQuery(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"details": "always broken"}`)
	})
	defer server.Close()

	res := client.Repair(context.Background(), "t:instant or or t:sorcery", nil, 1500)
	if res.Repaired {
		t.Error("expected repair to fail")
	}
	if res.Query == "" {
		t.Error("expected best-effort query kept")
	}
}

func TestBroadenRaisesManaValueBeforeDroppingFormat(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if strings.Contains(q, "mv<=3") {
			fmt.Fprint(w, `{"total_cards": 9}`)
			return
		}
		fmt.Fprint(w, `{"total_cards": 0}`)
	})
	defer server.Close()

	res := client.Broaden(context.Background(), "f:standard t:goblin mv<=2", 1500)
	if !res.Broadened {
		t.Fatalf("expected broaden to succeed, got %+v", res)
	}
	if !strings.Contains(res.Query, "f:standard") {
		t.Errorf("format should survive when raising mv suffices, got %q", res.Query)
	}
	if !strings.Contains(res.Query, "mv<=3") {
		t.Errorf("expected mv ceiling raised, got %q", res.Query)
	}
}

func TestBroadenDropsFormatWhenNeeded(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("q"), "f:") {
			fmt.Fprint(w, `{"total_cards": 0}`)
			return
		}
		fmt.Fprint(w, `{"total_cards": 7}`)
	})
	defer server.Close()

	res := client.Broaden(context.Background(), "f:standard t:goblin", 1500)
	if !res.Broadened {
		t.Fatalf("expected broaden to succeed, got %+v", res)
	}
	if strings.Contains(res.Query, "f:standard") {
		t.Errorf("expected format dropped, got %q", res.Query)
	}
}

func TestBroadenExhausted(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total_cards": 0}`)
	})
	defer server.Close()

	res := client.Broaden(context.Background(), "f:standard t:goblin mv<=2 usd<1", 1500)
	if res.Broadened {
		t.Error("expected broaden to fail when nothing matches")
	}
	if res.Query == "" {
		t.Error("expected best-effort query kept")
	}
}

func containsStr(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
