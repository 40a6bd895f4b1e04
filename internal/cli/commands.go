package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/spress-import/internal/config"
	"github.com/mrlokans/spress-import/internal/importers"
)

// csvCharacterFlags maps csv command flags to provider options.
var csvCharacterFlags = map[string]string{
	"delimiter-character":       "delimiter_character",
	"enclosure-character":       "enclosure_character",
	"escape-character":          "escape_character",
	"terms-delimiter-character": "terms_delimiter_character",
}

func newCSVCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv <file>",
		Short: "Import posts from a CSV file",
		Long: `Import posts from a CSV file with the columns:

  title, permalink, content, published_at[, categories[, tags[, markup]]]

Categories and tags are lists separated by the terms delimiter. Markup names the
format of the content and defaults to "md".`,
		Example: `  spress-import csv posts.csv --src ./mysite
  spress-import csv posts.csv --delimiter-character ";" --not-header --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := importers.Options{"file": args[0]}

			flags := cmd.Flags()
			for flag, option := range csvCharacterFlags {
				if !flags.Changed(flag) {
					continue
				}
				value, err := flags.GetString(flag)
				if err != nil {
					return err
				}
				options[option] = value
			}
			notHeader, err := flags.GetBool("not-header")
			if err != nil {
				return err
			}
			options["not_header"] = notHeader

			return a.runImport(cmd, "Importing from CSV file", providerCSV, options)
		},
	}

	cmd.Flags().Bool("not-header", false, "the first row holds data, not column names")
	cmd.Flags().String("delimiter-character", ",", "field delimiter")
	cmd.Flags().String("enclosure-character", `"`, "field enclosure")
	cmd.Flags().String("escape-character", `\`, "escape character inside enclosures, empty to disable")
	cmd.Flags().String("terms-delimiter-character", ";", "separator of categories and tags")
	addNotReplaceURLsFlag(cmd)

	return cmd
}

func newWordpressCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordpress <file>",
		Short: "Import a blog from a Wordpress WXR export",
		Long: `Import posts, pages and attachments from a WXR file generated by
Wordpress (Tools → Export). Attachments are downloaded only with
--fetch-resources.`,
		Example: `  spress-import wordpress export.xml --src ./mysite --post-layout post
  spress-import wordpress export.xml --fetch-resources --resource-path assets`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImport(cmd, "Importing from Wordpress WXR file", providerWordpress, importers.Options{"file": args[0]})
		},
	}

	cmd.Flags().Bool("fetch-resources", false, "download attachments")
	cmd.Flags().String("resource-path", config.DefaultResourcePath, "directory below content for downloaded attachments")
	addNotReplaceURLsFlag(cmd)

	return cmd
}

func newFeedCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "feed <file>",
		Short:   "Import posts from an RSS, Atom or JSON feed",
		Example: `  spress-import feed feed.xml --src ./mysite`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImport(cmd, "Importing from feed", providerFeed, importers.Options{"file": args[0]})
		},
	}

	addNotReplaceURLsFlag(cmd)

	return cmd
}
