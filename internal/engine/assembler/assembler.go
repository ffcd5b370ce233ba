// Package assembler turns fetched CSS sources into the final bundle text.
package assembler

import (
	"slices"
	"strings"

	"go.trai.ch/cssmerge/internal/core/domain"
)

// Options controls per-run transforms that are not part of a bundle's metadata.
type Options struct {
	// HideComments strips block comments from every source before it is wrapped.
	HideComments bool
}

// Assemble produces the bundle text: the header, then every successfully fetched
// entry in (Order, Index) order wrapped in Begin/End markers, then the minify policy.
// The input slice is not modified.
func Assemble(meta domain.Metadata, entries []domain.FetchedEntry, opts Options) string {
	sorted := slices.Clone(entries)
	domain.SortEntries(sorted)

	var body strings.Builder
	for _, e := range sorted {
		if e.Failed {
			continue
		}
		content := e.Content
		if opts.HideComments {
			content = StripComments(content)
		}
		body.WriteString("\n/* Begin ")
		body.WriteString(e.URL)
		body.WriteString(" */\n")
		body.WriteString(content)
		body.WriteString("\n/* End ")
		body.WriteString(e.URL)
		body.WriteString(" */\n")
	}

	header := RenderHeader(meta)
	if !meta.Minify {
		return header + body.String()
	}
	if meta.PreservesHeader() {
		return header + Minify(body.String())
	}
	return Minify(header + body.String())
}
