package importers

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/mrlokans/spress-import/internal/entities"
	"github.com/mrlokans/spress-import/internal/exporters"
	"github.com/mrlokans/spress-import/internal/fetch"
	"github.com/mrlokans/spress-import/internal/utils"
)

const contentDir = "content"

// PipelineConfig holds the settings of an import.
type PipelineConfig struct {
	// SrcPath is the root of the site, the directory holding "content".
	SrcPath string
	// ResourcePath is the directory below "content" for fetched resources.
	ResourcePath string
	DryRun       bool
	PostLayout   string
	PageLayout   string
	// FetchResources enables resource items. Without it they are dropped.
	FetchResources bool
	// DisableURLReplacement turns off rewriting of source URLs in bodies.
	DisableURLReplacement bool
}

// Fetcher downloads a resource.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Pipeline handles the common import workflow:
// provider items → site paths → front matter → URL rewrite → files.
type Pipeline struct {
	providers *Registry
	config    PipelineConfig
	fs        afero.Fs
	fetcher   Fetcher
	writer    *exporters.FileWriter
}

type PipelineOption func(*Pipeline)

// WithFs makes the pipeline read and write through fs.
func WithFs(fs afero.Fs) PipelineOption {
	return func(p *Pipeline) {
		p.fs = fs
	}
}

func WithFetcher(fetcher Fetcher) PipelineOption {
	return func(p *Pipeline) {
		p.fetcher = fetcher
	}
}

// NewPipeline creates an import pipeline over the providers of registry.
// It writes to the OS filesystem and fetches over HTTP unless told otherwise.
func NewPipeline(providers *Registry, config PipelineConfig, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		providers: providers,
		config:    config,
		fs:        afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fetcher == nil {
		p.fetcher = fetch.NewClient(fetch.Config{})
	}
	p.writer = exporters.NewFileWriter(p.fs, config.SrcPath)

	return p
}

// Import runs the provider registered as providerName and converts its
// items. Configuration, provider and parse errors abort the import; errors
// of a single item only mark its result.
func (p *Pipeline) Import(ctx context.Context, providerName string, options Options) ([]entities.ImportResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("provider", providerName).Logger()

	if p.config.FetchResources && p.config.ResourcePath == "" {
		return nil, newConfigError("resource_path", "The resource path is necessary for fetching resources.")
	}

	provider, err := p.providers.Get(providerName)
	if err != nil {
		return nil, err
	}

	if err := provider.SetUp(options); err != nil {
		return nil, err
	}
	defer func() {
		if err := provider.TearDown(); err != nil {
			logger.Warn().Err(err).Msg("Provider tear down failed")
		}
	}()

	items, err := provider.Items()
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("items", len(items)).Msg("Provider returned items")

	batch := &importBatch{}
	for _, item := range items {
		if item == nil {
			continue
		}
		result, err := p.processItem(ctx, item)
		if err != nil {
			logger.Warn().Err(err).Str("permalink", item.Permalink()).Msg("Item skipped")
			failed := entities.NewErrorResult(item.Permalink(), item.Kind(), err)
			batch.add(&failed)
			continue
		}
		if result != nil {
			batch.add(result)
		}
	}

	if !p.config.DisableURLReplacement {
		batch.replaceURLs()
	}

	if !p.config.DryRun {
		p.materialize(ctx, batch)
	}

	results := batch.collect()
	logger.Info().
		Int("results", len(results)).
		Int("errors", countErrors(results)).
		Bool("dry_run", p.config.DryRun).
		Msg("Import finished")

	return results, nil
}

func (p *Pipeline) processItem(ctx context.Context, item *entities.Item) (*entities.ImportResult, error) {
	path, err := newSitePath(item.Permalink())
	if err != nil {
		return nil, err
	}

	attrs := item.Attributes.Clone()
	if permalink := path.permalink(); permalink != "" {
		attrs.Set("permalink", permalink)
	}
	attrs.Set("no_html_extension", true)

	switch item.Kind() {
	case entities.KindPost:
		return p.processPost(item, attrs)
	case entities.KindResource:
		return p.processResource(ctx, item, path)
	default:
		return p.processPage(item, path, attrs)
	}
}

func (p *Pipeline) processPost(item *entities.Item, attrs entities.Attributes) (*entities.ImportResult, error) {
	if item.PublishedAt == nil {
		return nil, &MissingFieldError{Field: "Date", Permalink: item.Permalink()}
	}
	if item.Title == "" {
		return nil, &MissingFieldError{Field: "Title", Permalink: item.Permalink()}
	}

	filename := item.PublishedAt.Format("2006-01-02") + "-" + utils.Slug(item.Title, "-") + ".html"

	return p.contentResult(item, sanitizePath(contentDir+"/posts/"+filename), p.config.PostLayout, attrs)
}

func (p *Pipeline) processPage(item *entities.Item, path sitePath, attrs entities.Attributes) (*entities.ImportResult, error) {
	return p.contentResult(item, path.pagePath(), p.config.PageLayout, attrs)
}

func (p *Pipeline) contentResult(item *entities.Item, relativePath, layout string, attrs entities.Attributes) (*entities.ImportResult, error) {
	if layout != "" {
		attrs.Set("layout", layout)
	}
	if item.Title != "" {
		attrs.Set("title", item.Title)
	}

	content, err := exporters.RenderDocument(attrs, item.Text())
	if err != nil {
		return nil, err
	}

	existed, err := p.writer.Exists(relativePath)
	if err != nil {
		return nil, err
	}

	return &entities.ImportResult{
		SourcePermalink:   item.Permalink(),
		Kind:              item.Kind(),
		RelativePath:      relativePath,
		Content:           content,
		PreviouslyExisted: existed,
	}, nil
}

// processResource returns nil when resources are not fetched.
func (p *Pipeline) processResource(ctx context.Context, item *entities.Item, path sitePath) (*entities.ImportResult, error) {
	if !p.config.FetchResources {
		return nil, nil
	}

	relativePath := path.resourcePath(p.config.ResourcePath)

	data := item.Bytes()
	if item.FetchPermalinkAsResource {
		fetched, err := p.fetcher.Fetch(ctx, item.Permalink())
		if err != nil {
			return nil, err
		}
		data = fetched
	}

	existed, err := p.writer.Exists(relativePath)
	if err != nil {
		return nil, err
	}

	return &entities.ImportResult{
		SourcePermalink:   item.Permalink(),
		Kind:              item.Kind(),
		RelativePath:      relativePath,
		Content:           data,
		PreviouslyExisted: existed,
	}, nil
}

// materialize writes every successful result. A failed write only marks its result.
func (p *Pipeline) materialize(ctx context.Context, batch *importBatch) {
	logger := zerolog.Ctx(ctx)

	for _, result := range batch.results {
		if result.HasError || result.RelativePath == "" {
			continue
		}
		written, err := p.writer.Write(result.RelativePath, result.Content)
		if err != nil {
			logger.Error().Err(err).Str("path", result.RelativePath).Msg("Failed to write file")
			result.HasError = true
			result.Message = err.Error()
			continue
		}
		logger.Debug().Str("path", result.RelativePath).Bool("written", written).Msg("File materialized")
	}
}

// importBatch holds the results of one Import call in item order.
type importBatch struct {
	results   []*entities.ImportResult
	resources []*entities.ImportResult
	contents  []*entities.ImportResult
}

func (b *importBatch) add(result *entities.ImportResult) {
	b.results = append(b.results, result)
	if result.HasError {
		return
	}
	if result.IsContent() {
		b.contents = append(b.contents, result)
	} else {
		b.resources = append(b.resources, result)
	}
}

// replaceURLs rewrites, in the body of every post and page, the source
// permalinks of the other items to their site URLs. At each position the
// longest matching permalink wins.
func (b *importBatch) replaceURLs() {
	var targets []*entities.ImportResult
	for _, result := range b.results {
		if !result.HasError && result.RelativePath != "" {
			targets = append(targets, result)
		}
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return len(targets[i].SourcePermalink) > len(targets[j].SourcePermalink)
	})

	for _, content := range b.contents {
		pairs := make([]string, 0, 2*len(targets))
		for _, target := range targets {
			if target == content {
				continue
			}
			pairs = append(pairs, target.SourcePermalink, utils.DeletePrefix(target.RelativePath, contentDir))
		}
		if len(pairs) == 0 {
			continue
		}
		content.Content = []byte(strings.NewReplacer(pairs...).Replace(string(content.Content)))
	}
}

func (b *importBatch) collect() []entities.ImportResult {
	out := make([]entities.ImportResult, 0, len(b.results))
	for _, result := range b.results {
		out = append(out, *result)
	}
	return out
}

func countErrors(results []entities.ImportResult) int {
	n := 0
	for _, r := range results {
		if r.HasError {
			n++
		}
	}
	return n
}
