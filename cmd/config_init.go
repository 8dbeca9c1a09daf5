package cmd

import (
	"fmt"

	"github.com/brogergvhs/mfrgen/internal/config"
	"github.com/brogergvhs/mfrgen/internal/util"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultFile
		if len(args) == 1 {
			path = args[0]
		}

		def := config.DefaultConfig()

		fmt.Println("Default configuration:")
		def.Print()
		fmt.Println()

		label := fmt.Sprintf("Create config at %s", path)
		if util.FileExists(path) {
			label = fmt.Sprintf("%s exists. Overwrite", path)
		}

		prompt := promptui.Prompt{Label: label, IsConfirm: true}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("Aborted.")
			return nil
		}

		if err := config.SaveYAML(def, path); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Println("Config created at:", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
