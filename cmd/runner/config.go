package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in runner configuration as YAML.

Save it to ~/.runner/configs/runner.yaml or ./configs/runner.yaml and edit
the values you want to change; omitted keys keep their defaults.

Examples:
  runner config > ~/.runner/configs/runner.yaml
  runner config --check ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagCheck string

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheck != "" {
		if _, err := config.LoadRunner(flagCheck); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: OK\n", flagCheck)
		return
	}
	os.Stdout.Write(config.DefaultYAML())
}
