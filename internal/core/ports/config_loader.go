package ports

import "go.trai.ch/cssmerge/internal/core/domain"

// ManifestLoader defines the interface for locating and reading bundle manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ManifestLoader interface {
	// Discover expands the given files and directories into manifest file paths.
	// With no paths, the default manifest in the working directory is used.
	Discover(paths []string) ([]string, error)

	// Load reads and validates the manifest at path.
	Load(path string) (domain.BundleSpec, error)
}
