package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deckwise/scrybe/internal/concepts"
)

// conceptsCmd groups the concept library inspection commands.
var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Inspect the concept library",
}

var conceptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every known concept",
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := loadLibrary()
		if err != nil {
			return err
		}
		for _, c := range library {
			fmt.Printf("%-22s %-12s %s\n", c.ID, c.Category, strings.Join(c.Templates, " "))
		}
		return nil
	},
}

var conceptsLookupCmd = &cobra.Command{
	Use:   "lookup <term>",
	Short: "Show which concepts a phrase matches, with scores",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		term := strings.ToLower(strings.Join(args, " "))

		library, err := loadLibrary()
		if err != nil {
			return err
		}
		store, err := openStore(ctx, library)
		if err != nil {
			fmt.Printf("Warning: concept store unavailable: %v\n", err)
			store = nil
		}
		if store != nil {
			defer store.Close()
		}

		matcher := concepts.NewMatcher(library, store, viper.GetBool("debug"))
		matches := matcher.Match(ctx, term, 10, 0)
		if len(matches) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("%-22s %-8s sim=%.2f conf=%.2f  %s\n",
				m.ConceptID, m.MatchType, m.Similarity, m.Confidence, strings.Join(m.Templates, " "))
		}
		return nil
	},
}

func init() {
	conceptsCmd.AddCommand(conceptsListCmd)
	conceptsCmd.AddCommand(conceptsLookupCmd)
	rootCmd.AddCommand(conceptsCmd)
}
