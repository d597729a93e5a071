package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/deckwise/scrybe/internal/assemble"
	"github.com/deckwise/scrybe/internal/pipeline"
)

var (
	queryValidate bool
	queryJSON     bool
	queryFormat   string
	queryColors   []string
	queryMaxCmc   float64
)

// queryCmd translates one natural-language request.
var queryCmd = &cobra.Command{
	Use:   "query \"<text>\"",
	Short: "Translate a natural-language search into query syntax",
	Long: `Translate a plain-English card search into Scryfall query syntax.

Examples:
  scrybe query "budget board wipes under $5"
  scrybe query --validate "mono red creatures"
  scrybe query --format commander --colors w,u "utility lands"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, store, err := buildPipeline(ctx)
		if err != nil {
			return err
		}
		if store != nil {
			defer store.Close()
		}

		res := p.Run(ctx, args[0], pipeline.Context{
			StartTime: time.Now(),
			Options:   pipelineOptions(queryValidate),
			Filters: assemble.Filters{
				Format:        queryFormat,
				ColorIdentity: queryColors,
				MaxCmc:        queryMaxCmc,
			},
		})

		if queryJSON {
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(res.FinalQuery)
		fmt.Printf("  %s (source: %s, confidence: %.2f)\n", res.Explanation.Readable, res.Source, res.Explanation.Confidence)
		for _, assumption := range res.Explanation.Assumptions {
			fmt.Printf("  note: %s\n", assumption)
		}
		if res.Validation != nil {
			if res.Validation.Valid {
				fmt.Printf("  validated: %d cards\n", res.Validation.TotalCards)
			} else {
				fmt.Printf("  validation failed: %s\n", res.Validation.Error)
			}
		}
		if res.Intent.Ambiguous && len(res.Intent.Suggestions) > 0 {
			fmt.Printf("  did you mean: %s\n", strings.Join(res.Intent.Suggestions, "  |  "))
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().BoolVar(&queryValidate, "validate", false, "validate the query against the search backend")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "print the full pipeline result as JSON")
	queryCmd.Flags().StringVar(&queryFormat, "format", "", "deck format filter applied when the query has none")
	queryCmd.Flags().StringSliceVar(&queryColors, "colors", nil, "color identity filter, e.g. w,u or white,blue")
	queryCmd.Flags().Float64Var(&queryMaxCmc, "max-cmc", 0, "maximum mana value filter")

	rootCmd.AddCommand(queryCmd)
}
