package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cssmerge/internal/core/domain"
)

func TestMetadata_HasHeaderFields(t *testing.T) {
	assert.False(t, domain.Metadata{}.HasHeaderFields())
	assert.False(t, domain.Metadata{Output: "out.css", Minify: true}.HasHeaderFields())
	assert.True(t, domain.Metadata{Invite: "abc"}.HasHeaderFields())
	assert.True(t, domain.Metadata{Tags: []string{"dark"}}.HasHeaderFields())
}

func TestMetadata_PreservesHeader(t *testing.T) {
	yes, no := true, false

	assert.True(t, domain.Metadata{}.PreservesHeader())
	assert.True(t, domain.Metadata{PreserveMetadata: &yes}.PreservesHeader())
	assert.False(t, domain.Metadata{PreserveMetadata: &no}.PreservesHeader())
}

func TestSnippetSpec_BranchOrDefault(t *testing.T) {
	assert.Equal(t, "main", domain.SnippetSpec{Repo: "a/b"}.BranchOrDefault())
	assert.Equal(t, "next", domain.SnippetSpec{Repo: "a/b", Branch: "next"}.BranchOrDefault())
}

func TestToggles_Merge(t *testing.T) {
	env := domain.Toggles{HideComments: true}
	flags := domain.Toggles{DryRun: true}

	assert.Equal(t, domain.Toggles{HideComments: true, DryRun: true}, env.Merge(flags))
	assert.Equal(t, domain.Toggles{}, domain.Toggles{}.Merge(domain.Toggles{}))
}
