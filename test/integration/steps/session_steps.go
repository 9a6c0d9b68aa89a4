package steps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"github.com/defend-your-code/form/internal/application/usecase/report"
	"github.com/defend-your-code/form/internal/application/usecase/session"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
	reportwriter "github.com/defend-your-code/form/internal/integration/report"
	"github.com/defend-your-code/form/test/integration/mock"
)

// registerSessionSteps registers steps driving a whole form session.
func registerSessionSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the output mode is "([^"]*)"$`, theOutputModeIs)
	ctx.Step(`^the user answers:$`, theUserAnswers)
	ctx.Step(`^the session runs$`, theSessionRuns)

	ctx.Step(`^the session should complete$`, theSessionShouldComplete)
	ctx.Step(`^the session should complete after (\d+) rejections?$`, theSessionShouldCompleteAfterRejections)
	ctx.Step(`^the session should be aborted$`, theSessionShouldBeAborted)
	ctx.Step(`^the user should have been told "([^"]*)"$`, theUserShouldHaveBeenTold)
	ctx.Step(`^the output file "([^"]*)" should contain:$`, theOutputFileShouldContain)
	ctx.Step(`^the output file "([^"]*)" should contain "([^"]*)"$`, theOutputFileShouldContainLine)
	ctx.Step(`^the output file "([^"]*)" should not contain "([^"]*)"$`, theOutputFileShouldNotContain)
	ctx.Step(`^the output file "([^"]*)" should be unchanged$`, theOutputFileShouldBeUnchanged)
	ctx.Step(`^no output file should have been written$`, noOutputFileShouldHaveBeenWritten)
	ctx.Step(`^the console should show "([^"]*)"$`, theConsoleShouldShow)
	ctx.Step(`^the console should not show "([^"]*)"$`, theConsoleShouldNotShow)
	ctx.Step(`^the default output file name offered should be "([^"]*)"$`, theDefaultOutputFileNameOfferedShouldBe)
}

func theOutputModeIs(ctx context.Context, mode string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.outputMode = mode
	return nil
}

// theUserAnswers takes one answer per line. An empty line is an empty answer.
func theUserAnswers(ctx context.Context, doc *godog.DocString) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	lines := strings.Split(doc.Content, "\n")
	answers := make([]string, len(lines))
	for i, line := range lines {
		answers[i] = tc.resolve(line)
	}
	tc.prompter = mock.NewPrompter(answers...)
	return nil
}

func theSessionRuns(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.prompter == nil {
		tc.prompter = mock.NewPrompter()
	}

	writer, err := reportwriter.NewWriterForMode(tc.outputMode, tc.outputDir, &tc.console)
	if err != nil {
		return err
	}

	uc := session.NewRunSessionUseCase(
		session.RunSessionConfig{OutputDir: tc.outputDir},
		tc.prompter,
		tc.passwordService,
		tc.files,
		tc.observer,
		report.NewBuildTranscriptUseCase(tc.files, tc.timeMock),
		writer,
		tc.timeMock,
	)

	tc.output, tc.sessionErr = uc.Execute(ctx)
	if tc.output != nil {
		tc.sessionID = tc.output.Transcript.Submission.SessionID
	}
	return nil
}

func theSessionShouldComplete(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.sessionErr != nil {
		return fmt.Errorf("expected session to complete, got: %w", tc.sessionErr)
	}
	if tc.prompter.Remaining() != 0 {
		return fmt.Errorf("%d scripted answers were not used", tc.prompter.Remaining())
	}
	return nil
}

func theSessionShouldCompleteAfterRejections(ctx context.Context, count int) error {
	if err := theSessionShouldComplete(ctx); err != nil {
		return err
	}
	tc := GetTestContext(ctx)
	if tc.output.Rejections != count {
		return fmt.Errorf("expected %d rejections, got %d: %q", count, tc.output.Rejections, tc.prompter.Rejections())
	}
	return nil
}

func theSessionShouldBeAborted(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if !errors.Is(tc.sessionErr, domainerror.ErrSessionAborted) {
		return fmt.Errorf("expected aborted session, got: %v", tc.sessionErr)
	}
	return nil
}

func theUserShouldHaveBeenTold(ctx context.Context, reason string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	for _, r := range tc.prompter.Rejections() {
		if r == reason {
			return nil
		}
	}
	return fmt.Errorf("reason %q not shown; shown: %q", reason, tc.prompter.Rejections())
}

func readOutput(tc *TestContext, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(tc.outputDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to read output file: %w", err)
	}
	return string(data), nil
}

func theOutputFileShouldContain(ctx context.Context, name string, doc *godog.DocString) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	content, err := readOutput(tc, name)
	if err != nil {
		return err
	}
	expected := tc.resolve(doc.Content)
	if !strings.Contains(content, expected) {
		return fmt.Errorf("output file does not contain:\n%s\n--- actual ---\n%s", expected, content)
	}
	return nil
}

// theOutputFileShouldContainLine accepts \n escapes in the expected text.
func theOutputFileShouldContainLine(ctx context.Context, name, text string) error {
	return theOutputFileShouldContain(ctx, name, &godog.DocString{Content: strings.ReplaceAll(text, `\n`, "\n")})
}

func theOutputFileShouldNotContain(ctx context.Context, name, text string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	content, err := readOutput(tc, name)
	if err != nil {
		return err
	}
	if strings.Contains(content, text) {
		return fmt.Errorf("output file unexpectedly contains %q", text)
	}
	return nil
}

func theOutputFileShouldBeUnchanged(ctx context.Context, name string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	content, err := readOutput(tc, name)
	if err != nil {
		return err
	}
	if content != "previous run" {
		return fmt.Errorf("output file was modified: %q", content)
	}
	return nil
}

func noOutputFileShouldHaveBeenWritten(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(tc.outputDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(entries) != 0 {
		return fmt.Errorf("expected no output files, found %d", len(entries))
	}
	return nil
}

func theConsoleShouldShow(ctx context.Context, text string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if !strings.Contains(tc.console.String(), tc.resolve(text)) {
		return fmt.Errorf("console does not show %q:\n%s", text, tc.console.String())
	}
	return nil
}

func theConsoleShouldNotShow(ctx context.Context, text string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if strings.Contains(tc.console.String(), text) {
		return fmt.Errorf("console unexpectedly shows %q", text)
	}
	return nil
}

func theDefaultOutputFileNameOfferedShouldBe(ctx context.Context, name string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	for _, q := range tc.prompter.Questions() {
		if q.Default != "" {
			if q.Default != name {
				return fmt.Errorf("expected default %q, got %q", name, q.Default)
			}
			return nil
		}
	}
	return fmt.Errorf("no default output file name was offered")
}
