// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/application/usecase/session"
	"github.com/defend-your-code/form/internal/application/usecase/validation"
	"github.com/defend-your-code/form/internal/domain/valueobject"
	"github.com/defend-your-code/form/internal/integration/adapters"
	"github.com/defend-your-code/form/internal/integration/audit"
	"github.com/defend-your-code/form/internal/integration/persistence"
	"github.com/defend-your-code/form/internal/integration/persistence/model"
	"github.com/defend-your-code/form/test/integration/mock"
)

// testBcryptCost keeps hashing fast in scenarios.
const testBcryptCost = 4

// dirPlaceholder in step arguments is replaced by the scenario's work directory.
const dirPlaceholder = "{dir}"

// TestContext holds the test state for each scenario.
type TestContext struct {
	workDir   string
	outputDir string

	// Collaborators
	db              *mock.Db
	timeMock        *mock.Time
	passwordService adapter.PasswordService
	files           adapter.FileInspector
	rejections      adapter.RejectionRepository
	observer        adapter.RejectionObserver

	// Validator scenarios
	sessionID  uuid.UUID
	validator  *validation.Validator
	allowPunct bool
	result     valueobject.Result
	err        error

	// Session scenarios
	outputMode string
	prompter   *mock.Prompter
	console    bytes.Buffer
	output     *session.RunSessionOutput
	sessionErr error
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		workDir, err := os.MkdirTemp("", "form-scenario-*")
		if err != nil {
			return ctx, fmt.Errorf("failed to create work directory: %w", err)
		}

		db, err := mock.NewDb(&model.RejectionModel{})
		if err != nil {
			return ctx, fmt.Errorf("failed to open audit database: %w", err)
		}

		rejections := persistence.NewRejectionRepository(db.DbConn)
		tc := &TestContext{
			workDir:         workDir,
			outputDir:       filepath.Join(workDir, "output"),
			db:              db,
			timeMock:        mock.NewTime(),
			passwordService: adapters.NewPasswordService(testBcryptCost),
			files:           adapters.NewFileInspector(),
			rejections:      rejections,
			observer: audit.NewMultiObserver(
				audit.NewLogObserver(nil),
				audit.NewRepositoryObserver(rejections, 0),
			),
			outputMode: "both",
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc == nil {
			return ctx, nil
		}
		if tc.validator != nil {
			tc.validator.Discard()
		}
		_ = tc.db.Close()
		_ = os.RemoveAll(tc.workDir)
		return ctx, nil
	})

	registerFixtureSteps(ctx)
	registerValidatorSteps(ctx)
	registerSessionSteps(ctx)
	registerAuditSteps(ctx)
}

// resolve substitutes the work directory placeholder.
func (tc *TestContext) resolve(s string) string {
	return strings.ReplaceAll(s, dirPlaceholder, tc.workDir)
}

func testContext(ctx context.Context) (*TestContext, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}
	return tc, nil
}
