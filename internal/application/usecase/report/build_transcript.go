// Package report contains the use case that assembles the session transcript.
package report

import (
	"context"
	"fmt"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/domain/entity"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/domain/valueobject"
)

// BuildTranscriptInput represents the input for building a transcript.
type BuildTranscriptInput struct {
	Submission *entity.Submission
}

// BuildTranscriptUseCase reads the validated input file and computes the
// derived values of a finished session.
type BuildTranscriptUseCase struct {
	files adapter.FileInspector
	clock adapter.Clock
}

// NewBuildTranscriptUseCase creates a new BuildTranscriptUseCase instance.
func NewBuildTranscriptUseCase(files adapter.FileInspector, clock adapter.Clock) *BuildTranscriptUseCase {
	return &BuildTranscriptUseCase{
		files: files,
		clock: clock,
	}
}

// Execute builds the transcript. Reading the input file can fail if it changed
// after validation; that failure is returned as is and ends the session.
func (uc *BuildTranscriptUseCase) Execute(ctx context.Context, input BuildTranscriptInput) (*entity.Transcript, error) {
	s := input.Submission
	if s == nil || s.InputFileName == "" || s.OutputFileName == "" || s.PasswordHash == "" {
		return nil, domainerror.ErrSessionIncomplete
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contents, err := uc.files.ReadFile(s.InputFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	pair := valueobject.Int32Pair{First: s.FirstInteger, Second: s.SecondInteger}

	return &entity.Transcript{
		Submission:    s,
		InputContents: contents,
		Sum:           pair.Sum(),
		Product:       pair.Product(),
		CompletedAt:   uc.clock.Now().UTC(),
	}, nil
}
