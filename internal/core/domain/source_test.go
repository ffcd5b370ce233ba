package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cssmerge/internal/core/domain"
)

func TestExpand_URLSnippets(t *testing.T) {
	bundle := domain.BundleSpec{
		Snippets: []domain.SnippetSpec{
			{URL: "https://example.com/b.css", Order: 2},
			{URL: "https://example.com/a.css", Order: 1},
			{URL: "https://example.com/c.css"},
		},
	}

	entries := domain.Expand(bundle)

	assert.Equal(t, []domain.SourceEntry{
		{URL: "https://example.com/b.css", Order: 2, Index: 0},
		{URL: "https://example.com/a.css", Order: 1, Index: 1},
		{URL: "https://example.com/c.css", Order: 0, Index: 2},
	}, entries)
}

func TestExpand_RepoSnippets(t *testing.T) {
	bundle := domain.BundleSpec{
		Snippets: []domain.SnippetSpec{
			{
				Repo:   "acme/themes",
				Branch: "dev",
				Sources: []domain.SourceItem{
					{CSSPath: "src/base.css", Order: 3},
					{CSSPath: "src/colors.css"},
				},
			},
			{Repo: "acme/extras", CSSPath: "extra.css", Order: 1},
			{Repo: "acme/plain", Sources: []domain.SourceItem{{CSSPath: "plain.css", Order: 5}}},
		},
	}

	entries := domain.Expand(bundle)

	assert.Equal(t, []domain.SourceEntry{
		{URL: "https://raw.githubusercontent.com/acme/themes/dev/src/base.css", Order: 3, Index: 0},
		{URL: "https://raw.githubusercontent.com/acme/themes/dev/src/colors.css", Order: 0, Index: 1},
		{URL: "https://raw.githubusercontent.com/acme/extras/main/extra.css", Order: 1, Index: 2},
		{URL: "https://raw.githubusercontent.com/acme/plain/main/plain.css", Order: 5, Index: 3},
	}, entries)
}

func TestExpand_IndexesAreUniqueAndDense(t *testing.T) {
	bundle := domain.BundleSpec{
		Snippets: []domain.SnippetSpec{
			{URL: "https://example.com/1.css"},
			{Repo: "a/b", Sources: []domain.SourceItem{{CSSPath: "x.css"}, {CSSPath: "y.css"}, {CSSPath: "z.css"}}},
			{URL: "https://example.com/1.css"},
			{Repo: "c/d", CSSPath: "w.css"},
		},
	}

	entries := domain.Expand(bundle)
	require.Len(t, entries, 6)

	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		assert.GreaterOrEqual(t, e.Index, 0)
		assert.Less(t, e.Index, len(entries))
		assert.False(t, seen[e.Index], "duplicate index %d", e.Index)
		seen[e.Index] = true
	}
}

func TestExpand_Empty(t *testing.T) {
	assert.Empty(t, domain.Expand(domain.BundleSpec{}))
}

func TestSortEntries_OrderThenIndex(t *testing.T) {
	entries := []domain.FetchedEntry{
		{SourceEntry: domain.SourceEntry{URL: "d", Order: 2, Index: 3}},
		{SourceEntry: domain.SourceEntry{URL: "b", Order: 1, Index: 2}},
		{SourceEntry: domain.SourceEntry{URL: "c", Order: 2, Index: 0}},
		{SourceEntry: domain.SourceEntry{URL: "a", Order: 1, Index: 1}},
		{SourceEntry: domain.SourceEntry{URL: "z", Order: -1, Index: 4}},
	}

	sorted := domain.SortEntries(entries)

	urls := make([]string, 0, len(sorted))
	for _, e := range sorted {
		urls = append(urls, e.URL)
	}
	assert.Equal(t, []string{"z", "a", "b", "c", "d"}, urls)
}

func TestSortEntries_ExtremeOrders(t *testing.T) {
	entries := []domain.FetchedEntry{
		{SourceEntry: domain.SourceEntry{URL: "max", Order: math.MaxInt, Index: 0}},
		{SourceEntry: domain.SourceEntry{URL: "pos", Order: 1, Index: 1}},
		{SourceEntry: domain.SourceEntry{URL: "min", Order: math.MinInt, Index: 2}},
		{SourceEntry: domain.SourceEntry{URL: "neg", Order: -1, Index: 3}},
	}
	sorted := domain.SortEntries(entries)
	urls := make([]string, 0, len(sorted))
	for _, e := range sorted {
		urls = append(urls, e.URL)
	}
	assert.Equal(t, []string{"min", "neg", "pos", "max"}, urls)
}

func TestSortEntries_IndependentOfInputPermutation(t *testing.T) {
	base := []domain.FetchedEntry{
		{SourceEntry: domain.SourceEntry{URL: "first", Order: 0, Index: 0}},
		{SourceEntry: domain.SourceEntry{URL: "second", Order: 0, Index: 1}},
		{SourceEntry: domain.SourceEntry{URL: "third", Order: 0, Index: 2}},
	}
	permutations := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}}

	for _, perm := range permutations {
		shuffled := make([]domain.FetchedEntry, 0, len(base))
		for _, i := range perm {
			shuffled = append(shuffled, base[i])
		}
		assert.Equal(t, base, domain.SortEntries(shuffled))
	}
}

func TestRawURL(t *testing.T) {
	assert.Equal(t,
		"https://raw.githubusercontent.com/owner/repo/main/css/theme.css",
		domain.RawURL("owner/repo", "main", "css/theme.css"),
	)
}
