package report

import (
	"context"
	"fmt"
	"io"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/domain/entity"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
)

// Output modes.
const (
	OutputModeBoth    = "both"
	OutputModeFile    = "file"
	OutputModeConsole = "console"
)

// MultiWriter runs several writers in order and stops at the first failure.
type MultiWriter struct {
	writers []adapter.ReportWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(writers ...adapter.ReportWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write passes the transcript to every writer.
func (m *MultiWriter) Write(ctx context.Context, transcript *entity.Transcript) error {
	for _, w := range m.writers {
		if err := w.Write(ctx, transcript); err != nil {
			return err
		}
	}
	return nil
}

// NewWriterForMode builds the report writer for an output mode. In "both"
// mode the file is written first so the console can show where it went.
func NewWriterForMode(mode, dir string, out io.Writer) (adapter.ReportWriter, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	switch mode {
	case OutputModeBoth:
		return NewMultiWriter(NewFileWriter(dir, renderer), NewConsoleWriter(out, renderer)), nil
	case OutputModeFile:
		return NewFileWriter(dir, renderer), nil
	case OutputModeConsole:
		return NewConsoleWriter(out, renderer), nil
	default:
		return nil, fmt.Errorf("%w: %q", domainerror.ErrUnknownOutputMode, mode)
	}
}
