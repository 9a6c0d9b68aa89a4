// Package session contains the use case that drives one interactive form session.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/application/usecase/report"
	"github.com/defend-your-code/form/internal/application/usecase/validation"
	"github.com/defend-your-code/form/internal/domain/entity"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/domain/valueobject"
)

// Prompt messages.
const (
	firstNameQuestion       = "Please enter your first name (letters only, 50 characters max):"
	lastNameQuestion        = "Please enter your last name (letters only, 50 characters max):"
	firstIntegerQuestion    = "Please enter an integer (max of 2^31 - 1, min of -2^31):"
	secondIntegerQuestion   = "Please enter a second integer (max of 2^31 - 1, min of -2^31):"
	inputFileQuestion       = "Please enter the path of a .txt file to read:"
	outputFileQuestion      = "Please enter the name of the .txt file to write:"
	passwordQuestion        = "Please enter a password:"
	confirmPasswordQuestion = "Please re-enter your password:"
)

// RunSessionConfig holds the per-session validator settings.
type RunSessionConfig struct {
	OutputDir            string
	AllowNamePunctuation bool
}

// RunSessionOutput represents the output of a completed session.
type RunSessionOutput struct {
	Transcript *entity.Transcript
	// Rejections is the number of answers refused before the form was complete.
	Rejections int
}

// RunSessionUseCase asks every form field in order until each is accepted,
// then builds and writes the transcript.
type RunSessionUseCase struct {
	cfg             RunSessionConfig
	prompter        adapter.Prompter
	passwordService adapter.PasswordService
	files           adapter.FileInspector
	observer        adapter.RejectionObserver
	buildTranscript *report.BuildTranscriptUseCase
	writer          adapter.ReportWriter
	clock           adapter.Clock
}

// NewRunSessionUseCase creates a new RunSessionUseCase instance.
// observer may be nil.
func NewRunSessionUseCase(
	cfg RunSessionConfig,
	prompter adapter.Prompter,
	passwordService adapter.PasswordService,
	files adapter.FileInspector,
	observer adapter.RejectionObserver,
	buildTranscript *report.BuildTranscriptUseCase,
	writer adapter.ReportWriter,
	clock adapter.Clock,
) *RunSessionUseCase {
	return &RunSessionUseCase{
		cfg:             cfg,
		prompter:        prompter,
		passwordService: passwordService,
		files:           files,
		observer:        observer,
		buildTranscript: buildTranscript,
		writer:          writer,
		clock:           clock,
	}
}

// session is the state of one Execute call.
type session struct {
	uc         *RunSessionUseCase
	validator  *validation.Validator
	logger     *slog.Logger
	rejections int
}

// Execute runs one session. It returns ErrSessionAborted when the input is
// closed or ctx is cancelled before the form is complete. Nothing is written
// until every field, including the password confirmation, has been accepted.
func (uc *RunSessionUseCase) Execute(ctx context.Context) (*RunSessionOutput, error) {
	submission := entity.NewSubmission(uc.clock.Now())

	s := &session{
		uc: uc,
		validator: validation.NewValidator(validation.Options{
			SessionID:            submission.SessionID,
			OutputDir:            uc.cfg.OutputDir,
			AllowNamePunctuation: uc.cfg.AllowNamePunctuation,
		}, uc.passwordService, uc.files, uc.observer),
		logger: slog.Default().With("sessionID", submission.SessionID.String()),
	}
	defer s.validator.Discard()

	s.logger.Info("Session started")

	if err := s.fill(ctx, submission); err != nil {
		if errors.Is(err, domainerror.ErrSessionAborted) {
			s.logger.Warn("Session aborted", "rejections", s.rejections)
		}
		return nil, err
	}

	transcript, err := uc.buildTranscript.Execute(ctx, report.BuildTranscriptInput{Submission: submission})
	if err != nil {
		return nil, err
	}

	if err := uc.writer.Write(ctx, transcript); err != nil {
		return nil, fmt.Errorf("failed to write transcript: %w", err)
	}

	s.logger.Info("Session completed", "rejections", s.rejections, "outputPath", transcript.OutputPath)

	return &RunSessionOutput{
		Transcript: transcript,
		Rejections: s.rejections,
	}, nil
}

func (s *session) fill(ctx context.Context, submission *entity.Submission) error {
	v := s.validator
	var err error

	if submission.FirstName, err = s.ask(ctx, adapter.Question{Message: firstNameQuestion}, entity.FieldFirstName, check(v.ValidateName)); err != nil {
		return err
	}
	if submission.LastName, err = s.ask(ctx, adapter.Question{Message: lastNameQuestion}, entity.FieldLastName, check(v.ValidateLastName)); err != nil {
		return err
	}

	if _, err = s.ask(ctx, adapter.Question{Message: firstIntegerQuestion}, entity.FieldFirstInteger, check(v.ValidateFirstInteger)); err != nil {
		return err
	}
	if _, err = s.ask(ctx, adapter.Question{Message: secondIntegerQuestion}, entity.FieldSecondInteger, check(v.ValidateSecondInteger)); err != nil {
		return err
	}
	pair, ok := v.Pair()
	if !ok {
		return domainerror.ErrSessionIncomplete
	}
	submission.FirstInteger = pair.First
	submission.SecondInteger = pair.Second

	if submission.InputFileName, err = s.ask(ctx, adapter.Question{Message: inputFileQuestion}, entity.FieldInputFile, check(v.ValidateInputFile)); err != nil {
		return err
	}

	outputQuestion := adapter.Question{
		Message: outputFileQuestion,
		Default: submission.DefaultOutputFileName(s.uc.clock.Now()),
	}
	if submission.OutputFileName, err = s.ask(ctx, outputQuestion, entity.FieldOutputFile, check(v.ValidateOutputFile)); err != nil {
		return err
	}

	if _, err = s.ask(ctx, adapter.Question{Message: passwordQuestion, Secret: true}, entity.FieldPassword, v.ValidatePassword); err != nil {
		return err
	}
	if _, err = s.ask(ctx, adapter.Question{Message: confirmPasswordQuestion, Secret: true}, entity.FieldPasswordConfirmation, check(v.ConfirmPassword)); err != nil {
		return err
	}

	hash, ok := v.PasswordHash()
	if !ok {
		return domainerror.ErrSessionIncomplete
	}
	submission.PasswordHash = hash
	return nil
}

type validateFunc func(string) (valueobject.Result, error)

// check adapts a validator that cannot fail with an error.
func check(fn func(string) valueobject.Result) validateFunc {
	return func(s string) (valueobject.Result, error) {
		return fn(s), nil
	}
}

// ask repeats the question until the answer is accepted.
func (s *session) ask(ctx context.Context, question adapter.Question, field entity.Field, validate validateFunc) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", domainerror.ErrSessionAborted, err)
		}

		answer, err := s.uc.prompter.Ask(ctx, question)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return "", fmt.Errorf("%w: %w", domainerror.ErrSessionAborted, err)
			}
			return "", fmt.Errorf("failed to read %s: %w", field, err)
		}
		if answer == "" && question.Default != "" {
			answer = question.Default
		}

		result, err := validate(answer)
		if err != nil {
			return "", err
		}
		if result.Valid() {
			return answer, nil
		}
		if result.IsPrecondition() {
			return "", fmt.Errorf("%s asked out of order: %w", field, result.Err())
		}

		s.rejections++
		if err := s.uc.prompter.Reject(ctx, result.Reason()); err != nil {
			return "", fmt.Errorf("failed to show rejection: %w", err)
		}
	}
}
