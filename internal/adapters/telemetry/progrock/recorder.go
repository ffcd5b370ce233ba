// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/cssmerge/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock tape.
// Close reports what the tape saw through the logger.
type Recorder struct {
	tape   *progrock.Tape
	rec    *progrock.Recorder
	logger ports.Logger
}

// New creates a new Recorder writing to a fresh tape.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(progrock.NewTape(), logger)
}

// NewRecorder creates a new Recorder writing to tape.
func NewRecorder(tape *progrock.Tape, logger ports.Logger) *Recorder {
	return &Recorder{
		tape:   tape,
		rec:    progrock.NewRecorder(tape),
		logger: logger,
	}
}

// Record starts a vertex named name. Vertices with the same name share a digest.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close completes the recording, closes the tape and logs a summary of it.
func (r *Recorder) Close() error {
	r.rec.Complete()
	if err := r.rec.Close(); err != nil {
		return err
	}

	var failed []string
	for _, v := range r.tape.Vertices() {
		if v.Error != nil {
			failed = append(failed, v.Name)
		}
	}

	args := []any{
		"vertices", r.tape.TotalCount(),
		"cached", r.tape.CachedCount(),
		"errored", r.tape.ErroredCount(),
		"duration", r.tape.Duration().Round(time.Millisecond),
	}
	if len(failed) > 0 {
		args = append(args, "failed", failed)
	}
	r.logger.Info("run summary", args...)
	return nil
}
