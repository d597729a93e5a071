package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/deckwise/scrybe/internal/ai"
	"github.com/deckwise/scrybe/internal/concepts"
	"github.com/deckwise/scrybe/internal/pipeline"
	"github.com/deckwise/scrybe/internal/scryfall"
)

// loadLibrary returns the builtin concept set, merged with the operator's
// YAML file when one is configured.
func loadLibrary() ([]concepts.Concept, error) {
	library := concepts.BuiltinLibrary()
	if path := viper.GetString("concepts.file"); path != "" {
		merged, err := concepts.LoadLibraryFile(library, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load concept file: %w", err)
		}
		library = merged
	}
	return library, nil
}

// openStore picks the external concept store: Postgres when a DSN is
// configured, the embedded SQLite file when a path is, otherwise none.
func openStore(ctx context.Context, library []concepts.Concept) (concepts.Store, error) {
	if dsn := viper.GetString("concepts.postgres.dsn"); dsn != "" {
		return concepts.NewPGStore(ctx, dsn, library)
	}
	if path := viper.GetString("concepts.sqlite.path"); path != "" {
		return concepts.NewSQLiteStore(path, library)
	}
	return nil, nil
}

// buildPipeline wires the full pipeline from configuration. The returned
// store may be nil; callers close it when non-nil.
func buildPipeline(ctx context.Context) (*pipeline.Pipeline, concepts.Store, error) {
	debug := viper.GetBool("debug")

	library, err := loadLibrary()
	if err != nil {
		return nil, nil, err
	}

	store, err := openStore(ctx, library)
	if err != nil {
		// degraded but usable: exact matching still works
		fmt.Printf("Warning: concept store unavailable: %v\n", err)
		store = nil
	}

	matcher := concepts.NewMatcher(library, store, debug)
	client := newSearchClient()

	var translator pipeline.Translator
	if apiKey := viper.GetString("ai.api_key"); apiKey != "" {
		aiClient, err := ai.NewClient(ctx, apiKey, viper.GetString("ai.model"), debug)
		if err != nil {
			fmt.Printf("Warning: AI fallback unavailable: %v\n", err)
		} else {
			translator = aiClient
		}
	}

	return pipeline.New(matcher, client, translator), store, nil
}

func newSearchClient() *scryfall.Client {
	timeout := time.Duration(viper.GetInt("scryfall.timeout_ms")) * time.Millisecond
	return scryfall.NewClient(viper.GetString("scryfall.url"), timeout, viper.GetBool("debug"))
}

func pipelineOptions(validate bool) pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.ValidateWithScryfall = validate
	opts.MaxConcepts = viper.GetInt("pipeline.max_concepts")
	opts.ConceptThreshold = viper.GetFloat64("pipeline.concept_threshold")
	opts.OverlyBroadThreshold = viper.GetInt("pipeline.overly_broad_threshold")
	opts.Debug = viper.GetBool("debug")
	return opts
}
