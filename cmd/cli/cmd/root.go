// Package cmd provides the CLI commands for pricexpr.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pricing-expr/internal/config"
	"pricing-expr/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pricexpr",
	Short: "Work with pricing expressions",
	Long: `pricexpr is a developer tool for the pricing expression DSL.

It checks expressions against the DSL invariants and re-emits them in
canonical or pretty-printed form.

Examples:
  pricexpr check "add(tag('PREMIUM_CALL'),250)"
  pricexpr fmt --indent 4 "add(mul(tag('PREMIUM_CALL'),3),250)"
  pricexpr fmt --compact "add(\n  tag('A'),\n  1\n)"`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pricexpr.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pricexpr version 0.1.0")
	},
}
