package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mrlokans/spress-import/internal/config"
	"github.com/mrlokans/spress-import/internal/importers"
)

// app carries what every command needs. Tests swap the filesystem and the fetcher.
type app struct {
	out        io.Writer
	errOut     io.Writer
	fs         afero.Fs
	fetcher    importers.Fetcher
	configFile string
}

type Option func(*app)

func WithOutput(out, errOut io.Writer) Option {
	return func(a *app) {
		a.out = out
		a.errOut = errOut
	}
}

func WithFs(fs afero.Fs) Option {
	return func(a *app) {
		a.fs = fs
	}
}

func WithFetcher(fetcher importers.Fetcher) Option {
	return func(a *app) {
		a.fetcher = fetcher
	}
}

// NewRootCommand builds the spress-import command tree.
func NewRootCommand(version string, opts ...Option) *cobra.Command {
	a := &app{
		out:    os.Stdout,
		errOut: os.Stderr,
		fs:     afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "spress-import",
		Short:         "Import blog content into a static site",
		Long:          "spress-import converts CSV files, Wordpress WXR exports and RSS/Atom/JSON feeds\ninto posts, pages and resources below the \"content\" directory of a site.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is ./"+config.ConfigName+".yaml)")
	flags.String("src", config.DefaultSrcPath, "site root holding the content directory")
	flags.Bool("dry-run", false, "show what would be imported without writing files")
	flags.String("post-layout", "", "layout for post items")
	flags.String("page-layout", "", "layout for page items")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCSVCommand(a),
		newWordpressCommand(a),
		newFeedCommand(a),
	)

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(version string) int {
	root := NewRootCommand(version)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "\nError: %v\n\n", err)
		return 1
	}
	return 0
}
