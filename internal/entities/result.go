package entities

// ImportResult is the outcome of processing one item.
type ImportResult struct {
	SourcePermalink string `json:"source_permalink"`
	Kind            Kind   `json:"kind"`
	// RelativePath is relative to the site's source root, e.g. "content/about.html".
	RelativePath      string `json:"relative_path,omitempty"`
	Content           []byte `json:"-"`
	PreviouslyExisted bool   `json:"previously_existed"`
	HasError          bool   `json:"has_error"`
	Message           string `json:"message,omitempty"`
}

// NewErrorResult builds a failed result for the item identified by permalink.
func NewErrorResult(permalink string, kind Kind, err error) ImportResult {
	return ImportResult{
		SourcePermalink: permalink,
		Kind:            kind,
		HasError:        true,
		Message:         err.Error(),
	}
}

// IsContent reports whether the result holds a post or a page.
func (r ImportResult) IsContent() bool {
	return r.Kind == KindPost || r.Kind == KindPage
}
