// Package config provides the manifest loader for cssmerge.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cssmerge/internal/core/domain"
	"go.trai.ch/cssmerge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using YAML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new manifest loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Discover resolves files and directories into a de-duplicated list of manifests.
// Directories contribute their *.yml and *.yaml files; they are not searched recursively.
func (l *Loader) Discover(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{domain.DefaultManifestFile}
	}

	var manifests []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to stat manifest path"), "path", p)
		}

		if !info.IsDir() {
			manifests = append(manifests, filepath.Clean(p))
			continue
		}

		found, err := manifestsInDir(p)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, found...)
	}

	manifests = dedupe(manifests)
	if len(manifests) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoManifests, "nothing to merge"), "paths", strings.Join(paths, ","))
	}
	return manifests, nil
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func manifestsInDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest directory"), "path", dir)
	}

	var found []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yml", ".yaml":
			found = append(found, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(found)
	return found, nil
}

// Load reads the manifest at path.
func (l *Loader) Load(path string) (domain.BundleSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.BundleSpec{}, zerr.With(zerr.Wrap(err, "manifest not found"), "path", path)
		}
		return domain.BundleSpec{}, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	bundle, err := Parse(data)
	if err != nil {
		return domain.BundleSpec{}, zerr.With(err, "path", path)
	}
	bundle.Path = path

	if l.logger != nil {
		l.logger.Info("loaded manifest", "path", path, "snippets", len(bundle.Snippets))
	}
	return bundle, nil
}

// Parse decodes manifest data. Two shapes are accepted: a mapping with "metadata" and
// "snippets" keys, or a bare list of snippets without metadata.
func Parse(data []byte) (domain.BundleSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.BundleSpec{}, zerr.Wrap(err, "failed to parse manifest")
	}
	if len(doc.Content) == 0 {
		return domain.BundleSpec{}, zerr.Wrap(domain.ErrInvalidManifest, "manifest is empty")
	}

	root := doc.Content[0]
	var (
		meta     MetadataDTO
		snippets []SnippetDTO
	)

	switch root.Kind {
	case yaml.MappingNode:
		var manifest Manifest
		if err := root.Decode(&manifest); err != nil {
			return domain.BundleSpec{}, zerr.Wrap(err, "failed to decode manifest")
		}
		if manifest.Snippets.Kind != yaml.SequenceNode {
			return domain.BundleSpec{}, zerr.Wrap(domain.ErrSnippetsNotList, "invalid manifest")
		}
		if err := manifest.Snippets.Decode(&snippets); err != nil {
			return domain.BundleSpec{}, zerr.Wrap(err, "failed to decode snippets")
		}
		meta = manifest.Metadata
	case yaml.SequenceNode:
		if err := root.Decode(&snippets); err != nil {
			return domain.BundleSpec{}, zerr.Wrap(err, "failed to decode snippets")
		}
	default:
		return domain.BundleSpec{}, zerr.Wrap(domain.ErrInvalidManifest, "manifest must be a mapping or a list")
	}

	bundle := domain.BundleSpec{
		Metadata: toMetadata(meta),
		Snippets: make([]domain.SnippetSpec, 0, len(snippets)),
	}
	for i, dto := range snippets {
		snippet, err := toSnippet(dto)
		if err != nil {
			return domain.BundleSpec{}, zerr.With(err, "snippet", i)
		}
		bundle.Snippets = append(bundle.Snippets, snippet)
	}
	return bundle, nil
}

func toMetadata(dto MetadataDTO) domain.Metadata {
	return domain.Metadata{
		Name:             dto.Name,
		Description:      dto.Description,
		Author:           dto.Author,
		AuthorID:         dto.AuthorID,
		Source:           dto.Source,
		Version:          dto.Version,
		Website:          dto.Website,
		Invite:           dto.Invite,
		Tags:             dto.Tags,
		Output:           dto.Output,
		Minify:           dto.Minify,
		PreserveMetadata: dto.PreserveMetadata,
	}
}

func toSnippet(dto SnippetDTO) (domain.SnippetSpec, error) {
	switch {
	case dto.URL != "" && dto.Repo != "":
		return domain.SnippetSpec{}, zerr.Wrap(domain.ErrInvalidSnippet, "snippet has both url and repo")
	case dto.URL != "":
		return domain.SnippetSpec{URL: dto.URL, Order: dto.Order}, nil
	case dto.Repo == "":
		return domain.SnippetSpec{}, zerr.Wrap(domain.ErrInvalidSnippet, "snippet needs a url or a repo")
	case dto.CSSPath == "" && len(dto.Sources) == 0:
		return domain.SnippetSpec{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidSnippet, "repo snippet needs css_path or sources"), "repo", dto.Repo)
	}

	snippet := domain.SnippetSpec{
		Order:   dto.Order,
		Repo:    dto.Repo,
		Branch:  dto.Branch,
		CSSPath: dto.CSSPath,
	}
	for _, item := range dto.Sources {
		if item.CSSPath == "" {
			return domain.SnippetSpec{}, zerr.With(
				zerr.Wrap(domain.ErrInvalidSnippet, "source needs a css_path"), "repo", dto.Repo)
		}
		snippet.Sources = append(snippet.Sources, domain.SourceItem{CSSPath: item.CSSPath, Order: item.Order})
	}
	return snippet, nil
}
