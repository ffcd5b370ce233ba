package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cssmerge/internal/core/domain"
	"go.trai.ch/cssmerge/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.OutputSink = (*FileSink)(nil)
	_ ports.OutputSink = (*PreviewSink)(nil)
)

// FileSink writes merged CSS to disk, creating parent directories as needed.
type FileSink struct {
	logger ports.Logger
	hasher *Hasher
}

// NewFileSink creates a new FileSink.
func NewFileSink(logger ports.Logger, hasher *Hasher) *FileSink {
	return &FileSink{logger: logger, hasher: hasher}
}

// Write stores content at path. A file whose digest already matches content is left untouched.
func (s *FileSink) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.ensureDir(filepath.Dir(path)); err != nil {
		return s.fail(err, path)
	}

	sum := s.hasher.ComputeContentHash(content)
	existing, ok, err := s.hasher.ComputeFileHash(path)
	if err != nil {
		return s.fail(err, path)
	}
	if ok && existing == sum {
		s.logger.Info("output unchanged", "path", path, "digest", fmt.Sprintf("%016x", sum))
		return nil
	}

	if err := atomicWriteFile(path, []byte(content)); err != nil {
		return s.fail(err, path)
	}

	s.logger.Info("output written", "path", path, "bytes", len(content), "digest", fmt.Sprintf("%016x", sum))
	return nil
}

func (s *FileSink) ensureDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to stat output directory"), "dir", dir)
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", dir)
	}
	s.logger.Info("created directory", "dir", dir)
	return nil
}

func (s *FileSink) fail(err error, path string) error {
	return zerr.With(fmt.Errorf("%w: %w", domain.ErrOutputWriteFailed, err), "path", path)
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".cssmerge-*.css")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// PreviewSink prints merged CSS instead of writing it. Used in dry-run mode.
type PreviewSink struct {
	out io.Writer
}

// NewPreviewSink creates a PreviewSink printing to stdout.
func NewPreviewSink() *PreviewSink {
	return NewPreviewSinkWithWriter(os.Stdout)
}

// NewPreviewSinkWithWriter creates a PreviewSink printing to w.
func NewPreviewSinkWithWriter(w io.Writer) *PreviewSink {
	return &PreviewSink{out: w}
}

// Write prints content. The path is not touched.
func (s *PreviewSink) Write(_ context.Context, _ string, content string) error {
	if _, err := fmt.Fprintf(s.out, "Dry run mode - merged CSS content:\n%s\n", content); err != nil {
		return zerr.Wrap(err, "failed to print preview")
	}
	return nil
}
