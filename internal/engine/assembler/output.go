package assembler

import (
	"path/filepath"

	"go.trai.ch/cssmerge/internal/core/domain"
)

// ResolveOutputPath returns where a bundle is written. An empty output means
// DefaultOutputFile. An absolute output is re-rooted under cwd, so "/dist/a.css"
// becomes "<cwd>/dist/a.css". Relative outputs are only cleaned.
func ResolveOutputPath(cwd, output string) string {
	if output == "" {
		return domain.DefaultOutputFile
	}
	if filepath.IsAbs(output) {
		return filepath.Join(cwd, output)
	}
	return filepath.Clean(output)
}
