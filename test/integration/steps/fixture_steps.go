package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// registerFixtureSteps registers filesystem and clock setup steps.
func registerFixtureSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^an input file "([^"]*)" containing "([^"]*)"$`, anInputFileContaining)
	ctx.Step(`^an input file "([^"]*)" containing:$`, anInputFileContainingDoc)
	ctx.Step(`^a directory "([^"]*)"$`, aDirectory)
	ctx.Step(`^an existing output file "([^"]*)"$`, anExistingOutputFile)
	ctx.Step(`^the clock is set to "([^"]*)"$`, theClockIsSetTo)
}

func writeFixture(tc *TestContext, name, contents string) error {
	path := filepath.Join(tc.workDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(contents), 0o644)
}

func anInputFileContaining(ctx context.Context, name, contents string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return writeFixture(tc, name, strings.ReplaceAll(contents, `\n`, "\n"))
}

func anInputFileContainingDoc(ctx context.Context, name string, doc *godog.DocString) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return writeFixture(tc, name, doc.Content)
}

func aDirectory(ctx context.Context, name string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(tc.workDir, filepath.FromSlash(name)), 0o755)
}

func anExistingOutputFile(ctx context.Context, name string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(tc.outputDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(tc.outputDir, name), []byte("previous run"), 0o644)
}

func theClockIsSetTo(ctx context.Context, value string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.timeMock.SetCurrentTime(t)
	return nil
}
