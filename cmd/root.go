package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scrybe",
	Short: "Natural language to card-search queries",
	Long: `Scrybe translates plain-English descriptions of trading card searches
("budget board wipes under $5") into Scryfall search syntax, then
optionally validates and repairs the result against the live search API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// Root exposes the command tree for tests.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.scrybe.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output (shows each pipeline stage)")
	rootCmd.PersistentFlags().String("scryfall-url", "", "search endpoint override (or set SCRYBE_SCRYFALL_URL)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("scryfall.url", rootCmd.PersistentFlags().Lookup("scryfall-url"))

	viper.SetDefault("scryfall.timeout_ms", 10000)
	viper.SetDefault("pipeline.max_concepts", 5)
	viper.SetDefault("pipeline.concept_threshold", 0.7)
	viper.SetDefault("pipeline.overly_broad_threshold", 1500)
	viper.SetDefault("ai.model", "gemini-2.0-flash")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".scrybe")
	}

	viper.SetEnvPrefix("SCRYBE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}
