package report

import (
	"context"
	"fmt"
	"io"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/domain/entity"
)

// ConsoleWriter prints the transcript summary. The password hash is never printed.
type ConsoleWriter struct {
	out      io.Writer
	renderer *Renderer
}

// NewConsoleWriter creates a new ConsoleWriter.
func NewConsoleWriter(out io.Writer, renderer *Renderer) *ConsoleWriter {
	return &ConsoleWriter{
		out:      out,
		renderer: renderer,
	}
}

// Write prints the console rendering of the transcript.
func (w *ConsoleWriter) Write(ctx context.Context, transcript *entity.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := w.renderer.Render(ConsoleTemplate, transcript)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w.out, body); err != nil {
		return fmt.Errorf("failed to print transcript: %w", err)
	}
	return nil
}

var _ adapter.ReportWriter = (*ConsoleWriter)(nil)
