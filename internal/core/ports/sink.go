package ports

import "context"

// OutputSink receives the final content of a bundle.
//
//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type OutputSink interface {
	// Write stores content under path.
	Write(ctx context.Context, path, content string) error
}
