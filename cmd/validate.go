package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deckwise/scrybe/internal/concepts"
	"github.com/deckwise/scrybe/internal/scryfall"
)

var (
	validateRepair  bool
	validateBroaden bool
)

// validateCmd runs the validator loop directly on an already-written query.
var validateCmd = &cobra.Command{
	Use:   "validate \"<query>\"",
	Short: "Validate raw query syntax against the search backend",
	Long: `Validate an existing query against the search backend, applying the
same repair and broadening strategies the query pipeline uses.

Examples:
  scrybe validate "t:creature mv<=2 otag:ramp"
  scrybe validate --repair=false "f:modern (t:instant or or t:sorcery)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := newSearchClient()
		threshold := viper.GetInt("pipeline.overly_broad_threshold")

		query := scryfall.SanitizeQuerySyntax(args[0])
		result := client.Validate(ctx, query, threshold)

		if !result.Valid && validateRepair {
			library, err := loadLibrary()
			if err != nil {
				return err
			}
			repair := client.Repair(ctx, query, concepts.KnownTags(library), threshold)
			if repair.Repaired {
				fmt.Printf("repaired: %s\n", repair.Query)
				for _, step := range repair.Applied {
					fmt.Printf("  applied: %s\n", step)
				}
				query = repair.Query
				result = repair.Validation
			}
		}

		if result.Valid && result.ZeroResults && validateBroaden {
			broaden := client.Broaden(ctx, query, threshold)
			if broaden.Broadened {
				fmt.Printf("broadened: %s\n", broaden.Query)
				for _, step := range broaden.Applied {
					fmt.Printf("  applied: %s\n", step)
				}
				query = broaden.Query
				result = broaden.Validation
			}
		}

		switch {
		case result.Valid && !result.ZeroResults:
			fmt.Printf("valid: %s (%d cards)\n", query, result.TotalCards)
			if result.OverlyBroad {
				fmt.Println("  note: result set is very large; consider narrowing")
			}
		case result.Valid:
			fmt.Printf("valid but empty: %s\n", query)
		default:
			fmt.Printf("invalid: %s\n", result.Error)
		}
		for _, w := range result.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateRepair, "repair", true, "attempt repair strategies on invalid queries")
	validateCmd.Flags().BoolVar(&validateBroaden, "broaden", true, "attempt broadening strategies on empty results")

	rootCmd.AddCommand(validateCmd)
}
