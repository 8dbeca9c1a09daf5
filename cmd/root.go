package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/mfrgen/internal/config"
	"github.com/brogergvhs/mfrgen/internal/generator"
	"github.com/brogergvhs/mfrgen/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
	flagConfig       string

	flagSkipRescinded bool
)

var rootCmd = &cobra.Command{
	Use:   "mfrgen <manufacturer-id-numbers.html> <manufacturerids.h.in> <manufacturerids.h>",
	Short: "Generate a MIDI manufacturer ID header from the midi.org table",
	Args:  cobra.ArbitraryArgs,
	RunE:  runGenerate,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ./"+config.DefaultFile+" when present)")

	rootCmd.Flags().BoolVar(&flagSkipRescinded, "skip-rescinded", false, "leave rescinded manufacturer IDs out of the list")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func printUsage(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Usage: %s <manufacturer-id-numbers.html> <manufacturerids.h.in> <manufacturerids.h>\n", cmd.Root().Name())
	_, _ = fmt.Fprintf(out, "  wget %s\n", config.SourceURL)
	_, _ = fmt.Fprintf(out, "  or: %s fetch\n", cmd.Root().Name())
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		printUsage(cmd)
		return nil
	}

	cfg, _, err := config.LoadMerged(config.Options{
		ConfigPath:    flagConfig,
		IgnoreConfig:  flagIgnoreConfig,
		Debug:         flagDebug,
		SkipRescinded: flagSkipRescinded,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLoggerTo(cmd.OutOrStdout(), cfg.Debug)

	stats, err := generator.Run(generator.Options{
		InputPath:     args[0],
		TemplatePath:  args[1],
		OutputPath:    args[2],
		SkipRescinded: cfg.SkipRescinded,
		Log:           logSvc,
	})
	if err != nil {
		return err
	}

	stats.Print(cmd.OutOrStdout())
	logSvc.Infof("wrote %s\n", args[2])

	return nil
}
