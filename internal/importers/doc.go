// Package importers converts external blog content into the file based
// content model of a static site.
//
// # Architecture
//
// The import pipeline follows a simple flow:
//
//	Source → Provider → entities.Item → Pipeline → entities.ImportResult → FileWriter → content/
//
// Each source format implements the Provider interface, which turns the
// source into items (posts, pages and resources). The Pipeline derives the
// location of every item below "content", renders YAML front matter,
// rewrites links between imported items and writes the files.
//
// # Adding a New Provider
//
// To add support for a new format (e.g., Ghost JSON):
//
//  1. Create a new file: ghost.go
//
//  2. Implement the Provider interface:
//
//     type GhostProvider struct {
//     source documentSource
//     }
//
//     func (p *GhostProvider) SetUp(options Options) error
//     func (p *GhostProvider) Items() ([]*entities.Item, error)
//     func (p *GhostProvider) TearDown() error
//
//     // Compile-time check
//     var _ Provider = (*GhostProvider)(nil)
//
//  3. Register it under a name and import through the pipeline:
//
//     registry := importers.NewRegistry(map[string]importers.Provider{
//     "ghost": importers.NewGhostProvider(),
//     })
//     pipeline := importers.NewPipeline(registry, config)
//     results, err := pipeline.Import(ctx, "ghost", importers.Options{"file": path})
//
// # Existing Providers
//
//   - CSVProvider: delimited-text rows
//   - WXRProvider: Wordpress eXtended RSS exports
//   - FeedProvider: RSS, Atom and JSON feeds
//   - StaticProvider: a fixed list of entries
//
// # Errors
//
// Provider and configuration problems (*ConfigError, *RowError,
// *FormatError, *ProviderNotFoundError) abort an import. Problems with a
// single item, such as a post without a date or a failed download, only
// mark the result of that item.
package importers
