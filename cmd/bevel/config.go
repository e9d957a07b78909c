package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bevel/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration bevel would play with, as YAML.

Search order: --config -> ~/.bevel/configs/bevel.yaml -> ./configs/bevel.yaml -> built-in defaults.
The output is a complete file and can be saved and edited.

Examples:
  bevel config > ~/.bevel/configs/bevel.yaml
  bevel config --config ./my-bevel.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var (
	flagConfigPath   string
	flagConfigPreset string
)

func init() {
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagConfigPreset, "difficulty", "", "Apply a difficulty preset before printing")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadBevel(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagConfigPreset != "" {
		preset, err := config.ParsePreset(flagConfigPreset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
