package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brogergvhs/mfrgen/internal/config"
	"github.com/brogergvhs/mfrgen/internal/source"
	"github.com/brogergvhs/mfrgen/internal/ui"
	"github.com/brogergvhs/mfrgen/internal/util"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const defaultSnapshot = "manufacturer-id-numbers.html"

var (
	flagFetchURL  string
	flagUserAgent string
	flagForce     bool
)

func init() {
	fetchCmd := &cobra.Command{
		Use:   "fetch [output.html]",
		Short: "Download the manufacturer ID table from midi.org for offline generation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFetch,
	}

	fetchCmd.Flags().StringVar(&flagFetchURL, "url", "", "page to download (default "+config.SourceURL+")")
	fetchCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	fetchCmd.Flags().BoolVar(&flagForce, "force", false, "overwrite an existing snapshot without asking")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	dest := defaultSnapshot
	if len(args) == 1 {
		dest = args[0]
	}

	cfg, _, err := config.LoadMerged(config.Options{
		ConfigPath:   flagConfig,
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		SourceURL:    flagFetchURL,
		UserAgent:    flagUserAgent,
	})
	if err != nil {
		return err
	}

	if util.FileExists(dest) && !flagForce {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("%s exists. Overwrite", dest),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("Aborted.")
			return nil
		}
	}

	logSvc := ui.NewLogger(cfg.Debug)

	client := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		UserAgent:   util.PickUserAgent(cfg.UserAgent),
		DebugLogger: logSvc,
	})

	stop := util.SetupInterruptHandler(dest + util.PartSuffix)
	defer stop()

	pm := ui.NewProgressManager(nil)
	fetcher := source.NewFetcher(source.FetcherOptions{
		Client:   client,
		Retries:  cfg.Retries,
		Log:      logSvc,
		Progress: pm,
	})

	fmt.Printf("Downloading %s\n", cfg.SourceURL)
	start := time.Now()

	res, err := fetcher.Fetch(context.Background(), cfg.SourceURL, dest)
	pm.Close()
	if err != nil {
		if errors.Is(err, source.ErrNoRows) {
			return fmt.Errorf("%w; open %s in a browser and save the page as %s", err, cfg.SourceURL, dest)
		}
		return err
	}

	fmt.Println()
	fmt.Println("Fetch Summary:")
	fmt.Printf("File:  %s\n", res.Path)
	fmt.Printf("Rows:  %d\n", res.Rows)
	fmt.Printf("Data:  %s\n", util.Human(res.Bytes))
	fmt.Printf("Time:  %s\n", time.Since(start).Round(time.Millisecond))

	return nil
}
