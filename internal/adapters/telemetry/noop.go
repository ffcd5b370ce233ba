// Package telemetry holds telemetry implementations that need no backing recorder.
package telemetry

import (
	"context"

	"go.trai.ch/cssmerge/internal/core/domain"
	"go.trai.ch/cssmerge/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a ports.Telemetry that discards everything.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx carrying a vertex that does nothing.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Log does nothing.
func (NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (NoOpVertex) Cached() {}
