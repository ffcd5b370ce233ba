package domain

import "go.trai.ch/zerr"

var (
	// ErrNoManifests is returned when none of the given paths resolve to a manifest file.
	ErrNoManifests = zerr.New("no manifest files found")

	// ErrInvalidManifest is returned when a manifest is neither a mapping nor a list of snippets.
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrSnippetsNotList is returned when the "snippets" key of a manifest is missing or not a list.
	ErrSnippetsNotList = zerr.New(`manifest "snippets" must be an array of entries`)

	// ErrInvalidSnippet is returned when a snippet has neither a url nor a repo with paths.
	ErrInvalidSnippet = zerr.New("invalid snippet")

	// ErrRequestFailed is returned when a GET cannot be sent or its body cannot be read.
	ErrRequestFailed = zerr.New("request failed")

	// ErrUnexpectedStatus is returned by transports for non-2xx HTTP responses.
	ErrUnexpectedStatus = zerr.New("unexpected HTTP status")

	// ErrOutputWriteFailed is returned when a bundle's output cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrBundleFailed is returned after a run in which at least one bundle could not be written.
	ErrBundleFailed = zerr.New("one or more bundles failed")
)
