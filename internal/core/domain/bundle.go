package domain

// BundleSpec describes one output file and the ordered CSS sources that make it up.
// It is loaded from a single manifest and never mutated afterwards.
type BundleSpec struct {
	// Path is the manifest file the bundle was loaded from.
	Path     string
	Metadata Metadata
	Snippets []SnippetSpec
}

// Metadata holds the optional descriptive fields of a bundle and its output policy.
type Metadata struct {
	Name        string
	Description string
	Author      string
	AuthorID    string
	Source      string
	Version     string
	Website     string
	Invite      string
	Tags        []string

	// Output is the configured output path. Empty means DefaultOutputFile.
	Output string
	// Minify collapses whitespace in the assembled output.
	Minify bool
	// PreserveMetadata keeps the header out of minification.
	// Nil means the header is preserved.
	PreserveMetadata *bool
}

// HasHeaderFields reports whether any field rendered in the output header is set.
func (m Metadata) HasHeaderFields() bool {
	return m.Name != "" ||
		m.Description != "" ||
		m.Author != "" ||
		m.AuthorID != "" ||
		m.Source != "" ||
		m.Version != "" ||
		m.Website != "" ||
		m.Invite != "" ||
		len(m.Tags) > 0
}

// PreservesHeader reports whether minification must leave the header untouched.
func (m Metadata) PreservesHeader() bool {
	return m.PreserveMetadata == nil || *m.PreserveMetadata
}

// SnippetSpec is a manifest entry pointing at one or more remote CSS resources.
// Exactly one of URL or Repo is set.
type SnippetSpec struct {
	URL   string
	Order int

	Repo   string
	Branch string
	// CSSPath is the single-path form of a repository snippet.
	CSSPath string
	Sources []SourceItem
}

// SourceItem is one path inside a repository snippet.
type SourceItem struct {
	CSSPath string
	Order   int
}

// IsRepo reports whether the snippet addresses files in a repository.
func (s SnippetSpec) IsRepo() bool {
	return s.Repo != ""
}

// BranchOrDefault returns the configured branch or DefaultBranch.
func (s SnippetSpec) BranchOrDefault() string {
	if s.Branch == "" {
		return DefaultBranch
	}
	return s.Branch
}
