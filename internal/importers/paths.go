package importers

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var repeatedSeparators = regexp.MustCompile(`/{2,}`)

// sitePath is the location of an item derived from its source permalink.
type sitePath struct {
	// normalized is the lowercased URL path with a trailing separator and no
	// leading one, e.g. "2016/06/hello/". Empty for the site root.
	normalized string
	dir        string
	base       string
}

func newSitePath(permalink string) (sitePath, error) {
	u, err := url.Parse(permalink)
	if err != nil {
		return sitePath{}, fmt.Errorf("failed to parse permalink %s: %w", permalink, err)
	}

	// The path is kept as written in the source: non-ASCII characters stay
	// unescaped and existing percent escapes stay escaped.
	raw := u.RawPath
	if raw == "" {
		raw = u.EscapedPath()
	}
	normalized := sanitizePath(strings.ToLower(raw) + "/")
	trimmed := strings.TrimSuffix(normalized, "/")

	p := sitePath{normalized: normalized, base: trimmed}
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		p.dir, p.base = trimmed[:idx], trimmed[idx+1:]
	}

	return p, nil
}

// permalink returns the site relative URL, e.g. "/2016/06/hello", or "" for the root.
func (p sitePath) permalink() string {
	trimmed := strings.Trim(p.normalized, "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}

// pagePath returns the location of a page. Extensionless paths become
// .html files and the root becomes index.html.
func (p sitePath) pagePath() string {
	base := p.base
	switch {
	case base == "":
		base = "index.html"
	case !strings.Contains(base, "."):
		base += ".html"
	}
	return sanitizePath("content/" + p.dir + "/" + base)
}

// resourcePath returns the location of a resource below resourceDir.
func (p sitePath) resourcePath(resourceDir string) string {
	base := p.base
	if base == "" {
		base = "index.html"
	}
	return sanitizePath("content/" + resourceDir + "/" + p.dir + "/" + base)
}

// sanitizePath collapses repeated separators and strips a leading one.
func sanitizePath(path string) string {
	return strings.TrimPrefix(repeatedSeparators.ReplaceAllString(path, "/"), "/")
}
