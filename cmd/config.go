package cmd

import (
	"fmt"

	"github.com/brogergvhs/mfrgen/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective mfrgen settings (file values merged with flags)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, source, err := config.LoadMerged(config.Options{
			ConfigPath:   flagConfig,
			IgnoreConfig: flagIgnoreConfig,
			Debug:        flagDebug,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Settings source: %s\n", source)
		if source != flagConfig && source != config.DefaultFile {
			fmt.Printf("Write %s with `mfrgen config init` to persist changes.\n", config.DefaultFile)
		}
		fmt.Println()

		cfg.Print()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
