package domain

import (
	"cmp"
	"slices"
)

// SourceEntry is a single resolved CSS resource.
// Index is its position in the flattened, unsorted sequence of a bundle and is unique.
type SourceEntry struct {
	URL   string
	Order int
	Index int
}

// FetchedEntry is a SourceEntry together with the text fetched for it.
// Failed is set when every fetch attempt for the URL failed; Content is empty then.
type FetchedEntry struct {
	SourceEntry
	Content string
	Failed  bool
}

// RawURL builds the raw.githubusercontent.com address of a file in a repository.
func RawURL(repo, branch, cssPath string) string {
	return RawContentBaseURL + "/" + repo + "/" + branch + "/" + cssPath
}

// Expand flattens the snippets of a bundle into source entries.
// Entries keep manifest order and are numbered by their position in that order.
func Expand(bundle BundleSpec) []SourceEntry {
	entries := make([]SourceEntry, 0, len(bundle.Snippets))
	for _, snippet := range bundle.Snippets {
		switch {
		case !snippet.IsRepo():
			entries = append(entries, SourceEntry{URL: snippet.URL, Order: snippet.Order})
		case len(snippet.Sources) == 0:
			entries = append(entries, SourceEntry{
				URL:   RawURL(snippet.Repo, snippet.BranchOrDefault(), snippet.CSSPath),
				Order: snippet.Order,
			})
		default:
			for _, item := range snippet.Sources {
				entries = append(entries, SourceEntry{
					URL:   RawURL(snippet.Repo, snippet.BranchOrDefault(), item.CSSPath),
					Order: item.Order,
				})
			}
		}
	}

	for i := range entries {
		entries[i].Index = i
	}
	return entries
}

// SortEntries orders fetched entries by Order, then Index.
// It sorts in place and returns the slice for convenience.
func SortEntries(entries []FetchedEntry) []FetchedEntry {
	slices.SortStableFunc(entries, func(a, b FetchedEntry) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Index, b.Index))
	})
	return entries
}
