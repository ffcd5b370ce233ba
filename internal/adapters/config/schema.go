package config

import "gopkg.in/yaml.v3"

// Manifest represents the wrapper form of a css_manifest.yml file.
type Manifest struct {
	Metadata MetadataDTO `yaml:"metadata"`
	// Snippets is kept as a raw node so a missing or non-list value can be reported.
	Snippets yaml.Node `yaml:"snippets"`
}

// MetadataDTO represents the metadata block of a manifest.
type MetadataDTO struct {
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description"`
	Author           string   `yaml:"author"`
	AuthorID         string   `yaml:"authorId"`
	Source           string   `yaml:"source"`
	Version          string   `yaml:"version"`
	Website          string   `yaml:"website"`
	Invite           string   `yaml:"invite"`
	Tags             []string `yaml:"tags"`
	Output           string   `yaml:"output"`
	Minify           bool     `yaml:"minify"`
	PreserveMetadata *bool    `yaml:"preserve_metadata"`
}

// SnippetDTO represents one snippet entry.
type SnippetDTO struct {
	URL     string          `yaml:"url"`
	Order   int             `yaml:"order"`
	Repo    string          `yaml:"repo"`
	Branch  string          `yaml:"branch"`
	CSSPath string          `yaml:"css_path"`
	Sources []SourceItemDTO `yaml:"sources"`
}

// SourceItemDTO represents one path of a repository snippet.
type SourceItemDTO struct {
	CSSPath string `yaml:"css_path"`
	Order   int    `yaml:"order"`
}
