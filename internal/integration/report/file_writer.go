package report

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/domain/entity"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
)

// FileWriter writes the transcript into the output directory.
type FileWriter struct {
	dir      string
	renderer *Renderer
}

// NewFileWriter creates a new FileWriter rooted at dir.
func NewFileWriter(dir string, renderer *Renderer) *FileWriter {
	return &FileWriter{
		dir:      dir,
		renderer: renderer,
	}
}

// Write renders the transcript and publishes it as
// <dir>/<Submission.OutputFileName>. An existing file is never replaced; in
// that case ErrFileAlreadyExists is returned and nothing is left behind.
// On success transcript.OutputPath is set.
func (w *FileWriter) Write(ctx context.Context, transcript *entity.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := w.renderer.Render(TranscriptTemplate, transcript)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.dir, transcript.Submission.OutputFileName)
	if err := publish(w.dir, path, []byte(body)); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", domainerror.ErrFileAlreadyExists, path)
		}
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	transcript.OutputPath = path
	slog.Info("Transcript written", "path", path, "bytes", len(body))
	return nil
}

// publish writes data to a temp file in dir and links it to path, so readers
// only ever see the complete file. If hard links are not supported it falls
// back to an exclusive create.
func publish(dir, path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	err = os.Link(tmpName, path)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return err
	}

	slog.Debug("Hard link unavailable, using exclusive create", "error", err)
	return writeExclusive(path, data)
}

func writeExclusive(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

var _ adapter.ReportWriter = (*FileWriter)(nil)
