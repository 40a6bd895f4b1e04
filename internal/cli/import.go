package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/spress-import/internal/config"
	"github.com/mrlokans/spress-import/internal/fetch"
	"github.com/mrlokans/spress-import/internal/importers"
)

// Provider names used by the commands.
const (
	providerCSV       = "csv"
	providerWordpress = "wordpress"
	providerFeed      = "feed"
)

func newRegistry() *importers.Registry {
	return importers.NewRegistry(map[string]importers.Provider{
		providerCSV:       importers.NewCSVProvider(),
		providerWordpress: importers.NewWXRProvider(),
		providerFeed:      importers.NewFeedProvider(),
	})
}

// addNotReplaceURLsFlag registers the flag shared by every import command.
func addNotReplaceURLsFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("not-replace-urls", false, "keep source URLs in post and page bodies")
}

// runImport loads the configuration, imports with the named provider and
// prints the report. Import level errors are returned.
func (a *app) runImport(cmd *cobra.Command, title, provider string, options importers.Options) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger := newLogger(a.errOut, cfg.Verbose)
	ctx := logger.WithContext(cmd.Context())

	fetcher := a.fetcher
	if fetcher == nil {
		fetcher = fetch.NewClient(fetch.Config{
			Timeout:      cfg.Timeout,
			UserAgent:    cfg.UserAgent,
			MaxRetries:   cfg.MaxRetries,
			MaxBodyBytes: cfg.MaxBodyBytes,
		})
	}

	pipeline := importers.NewPipeline(newRegistry(), importers.PipelineConfig{
		SrcPath:               cfg.SrcPath,
		ResourcePath:          cfg.ResourcePath,
		DryRun:                cfg.DryRun,
		PostLayout:            cfg.PostLayout,
		PageLayout:            cfg.PageLayout,
		FetchResources:        cfg.FetchResources,
		DisableURLReplacement: cfg.NotReplaceURLs,
	}, importers.WithFs(a.fs), importers.WithFetcher(fetcher))

	printTitle(a.out, title)
	if cfg.DryRun {
		printLine(a.out, "DRY RUN MODE - No files will be written")
	}

	logger.Debug().Str("src", cfg.SrcPath).Str("provider", provider).Msg("Starting import")

	results, err := pipeline.Import(ctx, provider, options)
	if err != nil {
		return err
	}

	printResults(a.out, results)
	return nil
}
