package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shadowFAQs/textagons/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration textagons would play with, as YAML.

The configuration is read from --config, then ~/.textagons/config.yaml,
then ./configs/textagons.yaml, falling back to the built-in defaults.
Save the output to one of those paths to customise it.

Examples:
  textagons config
  textagons config > ~/.textagons/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
