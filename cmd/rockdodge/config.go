package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockdodge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the game configuration the way 'play' does and print it as
YAML. The first line names the file it came from.

Search order:
  --config <path>
  ~/.rockdodge/configs/dodge.yaml
  ./configs/dodge.yaml
  built-in defaults

Examples:
  rockdodge config > ~/.rockdodge/configs/dodge.yaml
  rockdodge config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameConfigFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadGameConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	if flagDifficulty != "" {
		fmt.Fprintf(out, "# difficulty: %s\n", flagDifficulty)
	}
	_, err = out.Write(data)
	return err
}
