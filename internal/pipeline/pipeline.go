package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/deckwise/scrybe/internal/assemble"
	"github.com/deckwise/scrybe/internal/concepts"
	"github.com/deckwise/scrybe/internal/intent"
	"github.com/deckwise/scrybe/internal/normalize"
	"github.com/deckwise/scrybe/internal/scryfall"
	"github.com/deckwise/scrybe/internal/slots"
)

const (
	confidenceBase         = 0.5
	confidenceFastPath     = 0.3
	confidenceConcept      = 0.1
	confidenceValidated    = 0.05
	confidenceRepaired     = 0.05
	confidenceShortCircuit = 0.95
	confidenceRawSyntax    = 0.9
)

// Translator turns free text into a raw DSL query when every deterministic
// path produced nothing. Implementations may call a language model.
type Translator interface {
	TranslateQuery(ctx context.Context, text string) (string, error)
}

// Pipeline holds the stage collaborators. All of them are read-only after
// construction, so one Pipeline serves concurrent requests.
type Pipeline struct {
	classifier *intent.Classifier
	extractor  *slots.Extractor
	matcher    *concepts.Matcher
	fastPath   FastPath
	client     *scryfall.Client
	translator Translator
	knownTags  map[string]bool
}

// New wires a pipeline. client and translator may be nil; validation and
// the AI fallback are then unavailable.
func New(matcher *concepts.Matcher, client *scryfall.Client, translator Translator) *Pipeline {
	return &Pipeline{
		classifier: intent.NewClassifier(),
		extractor:  slots.NewExtractor(),
		matcher:    matcher,
		fastPath:   KeywordFastPath{},
		client:     client,
		translator: translator,
		knownTags:  concepts.KnownTags(matcher.Library()),
	}
}

// Run translates one query. It never returns an error: every failure mode
// degrades to a best-effort result with an assumption recorded in the
// explanation.
func (p *Pipeline) Run(ctx context.Context, query string, pctx Context) Result {
	start := pctx.StartTime
	if start.IsZero() {
		start = time.Now()
	}
	opts := pctx.Options.normalized()

	res := Result{
		RequestID: pctx.RequestID,
		Original:  query,
	}
	finish := func(r Result) Result {
		r.ResponseTimeMs = time.Since(start).Milliseconds()
		return r
	}

	// raw DSL input bypasses semantic extraction entirely; check the
	// literal text, since normalization would rewrite its operators
	if literal := strings.ToLower(strings.TrimSpace(query)); normalize.IsRawSyntax(literal) {
		res.FinalQuery = scryfall.SanitizeQuerySyntax(literal)
		res.Source = SourceDeterministic
		res.Explanation = Explanation{
			Readable:   "query is already in search syntax",
			Confidence: confidenceRawSyntax,
		}
		p.validate(ctx, &res, opts)
		return finish(res)
	}

	res.Normalized = normalize.Normalize(query)
	text := res.Normalized.Normalized
	p.trace(opts, "normalized: %q", text)

	res.FastPath = p.fastPath.Translate(text)
	res.Intent = p.classifier.Classify(text)
	res.Slots = p.extractor.Extract(res.Normalized)
	p.trace(opts, "fastpath: %q remaining %q", res.FastPath.DeterministicQuery, res.FastPath.RemainingQuery)
	p.trace(opts, "residual: %q", res.Slots.Residual)

	// fast-path short circuit: both routes fully explained the text
	if res.FastPath.DeterministicQuery != "" && res.FastPath.RemainingQuery == "" && res.Slots.Residual == "" && !hasConceptWork(&res.Slots) {
		res.FinalQuery = scryfall.SanitizeQuerySyntax(res.FastPath.DeterministicQuery)
		res.Source = SourceDeterministic
		res.Explanation = Explanation{
			Readable:   buildExplanation(&res.Slots, nil, res.Original),
			Confidence: confidenceShortCircuit,
		}
		res.Explanation.Assumptions = append(res.Explanation.Assumptions, res.FastPath.Warnings...)
		p.validate(ctx, &res, opts)
		return finish(res)
	}

	if p.matcher != nil && res.Slots.Residual != "" {
		res.Concepts = p.matcher.Match(ctx, res.Slots.Residual, opts.MaxConcepts, opts.ConceptThreshold)
		p.trace(opts, "concepts: %d matched", len(res.Concepts))
	}

	res.Assembled = assemble.Assemble(&res.Slots, res.Concepts, opts.MaxQueryLength)
	res.Explanation.Assumptions = append(res.Explanation.Assumptions, res.Assembled.Warnings...)

	merged, fastPathContributed := p.merge(res.Assembled, res.FastPath, &res.Slots)
	res.Conflicts = assemble.DetectConflicts(merged)
	res.Explanation.Assumptions = append(res.Explanation.Assumptions, res.Conflicts.Warnings...)

	final := strings.Join(res.Conflicts.Deduplicated, " ")
	final = assemble.ApplyExternalFilters(final, pctx.Filters)
	final = scryfall.SanitizeQuerySyntax(final)

	switch {
	case final == "":
		final = p.aiFallback(ctx, &res, text)
	case len(res.Concepts) > 0:
		res.Source = SourceConceptMatch
	default:
		res.Source = SourceDeterministic
	}
	res.FinalQuery = final

	p.validate(ctx, &res, opts)

	confidence := confidenceBase
	if fastPathContributed {
		confidence += confidenceFastPath
	}
	if len(res.Concepts) > 0 {
		confidence += confidenceConcept
	}
	if res.Validation != nil && res.Validation.Valid {
		confidence += confidenceValidated
	}
	if res.Repair != nil && res.Repair.Repaired {
		confidence += confidenceRepaired
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	res.Explanation.Readable = buildExplanation(&res.Slots, res.Concepts, res.Original)
	res.Explanation.Confidence = confidence
	return finish(res)
}

// merge applies the asymmetric fast-path rule: when slot extraction already
// produced a constraint for a dimension (types, colors), the fast path's
// clauses for that dimension are discarded, so two independent detection
// routes never both contribute. Everything else merges token-by-token,
// skipping case-insensitive duplicates.
func (p *Pipeline) merge(asm assemble.Assembled, fp FastPathResult, s *slots.ExtractedSlots) ([]string, bool) {
	fpToks := assemble.Tokenize(fp.DeterministicQuery)
	if asm.Query == "" {
		return fpToks, len(fpToks) > 0
	}
	if len(fpToks) == 0 {
		return asm.Tokens, false
	}

	merged := append([]string{}, asm.Tokens...)
	present := make(map[string]bool, len(merged))
	for _, tok := range merged {
		present[strings.ToLower(tok)] = true
	}

	slotsHaveTypes := len(s.Types.Include) > 0 || len(s.Types.IncludeOr) > 0 || len(s.Types.Exclude) > 0
	contributed := false
	for _, tok := range fpToks {
		if present[strings.ToLower(tok)] {
			continue
		}
		if slotsHaveTypes && isTypeToken(tok) {
			continue
		}
		if s.Colors != nil && isColorToken(tok) {
			continue
		}
		present[strings.ToLower(tok)] = true
		merged = append(merged, tok)
		contributed = true
	}
	return merged, contributed
}

func isTypeToken(tok string) bool {
	return strings.HasPrefix(tok, "t:") || strings.HasPrefix(tok, "-t:") ||
		(strings.HasPrefix(tok, "(") && strings.Contains(tok, "t:"))
}

func isColorToken(tok string) bool {
	return strings.HasPrefix(tok, "c:") || strings.HasPrefix(tok, "ci:") ||
		strings.HasPrefix(tok, "c=") || strings.HasPrefix(tok, "ci<=") || strings.HasPrefix(tok, "ci=")
}

// validate runs the optional backend round trips: validation, then repair
// for invalid queries, then broadening for valid-but-empty ones.
func (p *Pipeline) validate(ctx context.Context, res *Result, opts Options) {
	if !opts.ValidateWithScryfall || p.client == nil || res.FinalQuery == "" {
		return
	}

	v := p.client.Validate(ctx, res.FinalQuery, opts.OverlyBroadThreshold)
	res.Validation = &v

	if !v.Valid && opts.repairEnabled() {
		r := p.client.Repair(ctx, res.FinalQuery, p.knownTags, opts.OverlyBroadThreshold)
		res.Repair = &r
		if r.Repaired {
			res.FinalQuery = r.Query
			res.Validation = &r.Validation
		} else {
			res.Explanation.Assumptions = append(res.Explanation.Assumptions,
				fmt.Sprintf("query could not be repaired: %s", v.Error))
		}
		return
	}

	if v.Valid && v.ZeroResults && opts.broadeningEnabled() {
		b := p.client.Broaden(ctx, res.FinalQuery, opts.OverlyBroadThreshold)
		res.Broaden = &b
		if b.Broadened {
			res.FinalQuery = b.Query
			res.Validation = &b.Validation
			res.Explanation.Assumptions = append(res.Explanation.Assumptions,
				"no exact matches; constraints were relaxed")
		} else {
			res.Explanation.Assumptions = append(res.Explanation.Assumptions,
				"no cards match even after relaxing constraints")
		}
	}

	if res.Validation != nil && !res.Validation.Valid && res.Validation.Error != "" && res.Repair == nil {
		res.Explanation.Assumptions = append(res.Explanation.Assumptions,
			fmt.Sprintf("validation unavailable: %s", res.Validation.Error))
	}
}

// aiFallback asks the translator for a raw query when nothing else produced
// one. Failure falls through to a plain text search.
func (p *Pipeline) aiFallback(ctx context.Context, res *Result, text string) string {
	if p.translator != nil {
		raw, err := p.translator.TranslateQuery(ctx, text)
		if err == nil && strings.TrimSpace(raw) != "" {
			res.Source = SourceAI
			res.Explanation.Assumptions = append(res.Explanation.Assumptions,
				"query was translated by the AI fallback")
			return scryfall.SanitizeQuerySyntax(raw)
		}
		if err != nil {
			res.Explanation.Assumptions = append(res.Explanation.Assumptions,
				fmt.Sprintf("AI fallback unavailable: %v", err))
		}
	}
	res.Source = SourceFallback
	res.Explanation.Assumptions = append(res.Explanation.Assumptions,
		"nothing structured was recognized; searching card text verbatim")
	return `o:"` + text + `"`
}

func (p *Pipeline) trace(opts Options, format string, args ...interface{}) {
	if opts.Debug {
		fmt.Printf("[pipeline] "+format+"\n", args...)
	}
}

// hasConceptWork reports whether slot extraction found anything the fast
// path cannot express, which forfeits the short circuit.
func hasConceptWork(s *slots.ExtractedSlots) bool {
	return len(s.IncludeText) > 0 || len(s.ExcludeText) > 0 || len(s.Tags) > 0
}
