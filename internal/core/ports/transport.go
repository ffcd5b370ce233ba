package ports

import "context"

// Transport fetches the textual body of a URL.
//
//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks
type Transport interface {
	// GetText performs a single GET. Non-2xx responses are returned as errors.
	GetText(ctx context.Context, url string) (string, error)
}
