package assembler

import (
	"strings"

	"go.trai.ch/cssmerge/internal/core/domain"
)

// RenderHeader renders the metadata comment block placed before the merged sources.
// It returns an empty string when no header field is set.
func RenderHeader(meta domain.Metadata) string {
	if !meta.HasHeaderFields() {
		return ""
	}

	var b strings.Builder
	b.WriteString("/**\n")
	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(" * @")
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	field("name", meta.Name)
	field("description", meta.Description)
	field("author", meta.Author)
	field("authorId", meta.AuthorID)
	field("source", meta.Source)
	field("version", meta.Version)
	field("website", meta.Website)
	field("invite", meta.Invite)
	if len(meta.Tags) > 0 {
		field("tags", strings.Join(meta.Tags, ", "))
	}

	b.WriteString(" */\n\n")
	return b.String()
}
