package domain

import "time"

const (
	// DefaultManifestFile is the manifest read when no path is given.
	DefaultManifestFile = "css_manifest.yml"

	// DefaultOutputFile is the output written when a bundle does not name one.
	DefaultOutputFile = "combined.css"

	// DefaultBranch is used for repository snippets without a branch.
	DefaultBranch = "main"

	// RawContentBaseURL is the host serving raw repository files.
	RawContentBaseURL = "https://raw.githubusercontent.com"

	// DefaultMaxAttempts is the number of GETs made for a URL before giving up.
	DefaultMaxAttempts = 3

	// DefaultRetryDelay is the fixed wait between two attempts.
	DefaultRetryDelay = 500 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
