// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/defend-your-code/form/config"
	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/application/usecase/report"
	"github.com/defend-your-code/form/internal/application/usecase/session"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/integration/adapters"
	"github.com/defend-your-code/form/internal/integration/audit"
	"github.com/defend-your-code/form/internal/integration/persistence"
	"github.com/defend-your-code/form/internal/integration/prompt"
	reportwriter "github.com/defend-your-code/form/internal/integration/report"
)

// Injector holds all application dependencies.
type Injector struct {
	Config     *config.Config
	DB         *gorm.DB
	Prompter   *prompt.TerminalPrompter
	RunSession *session.RunSessionUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// db may be nil, in which case rejections are only logged.
func NewInjector(cfg *config.Config, db *gorm.DB, in io.Reader, out io.Writer) (*Injector, error) {
	// Create adapters/services
	passwordService, err := NewPasswordService(&cfg.Password)
	if err != nil {
		return nil, err
	}
	files := adapters.NewFileInspector()
	clock := adapters.NewSystemClock()
	prompter := prompt.NewTerminalPrompter(in, out)

	writer, err := reportwriter.NewWriterForMode(cfg.Output.Mode, cfg.Output.Dir, out)
	if err != nil {
		return nil, err
	}

	// Create rejection observers
	var repoObserver adapter.RejectionObserver
	if db != nil {
		rejectionRepo := persistence.NewRejectionRepository(db)
		repoObserver = audit.NewRepositoryObserver(rejectionRepo, cfg.Audit.WriteTimeout)
	}
	observer := audit.NewMultiObserver(audit.NewLogObserver(nil), repoObserver)

	// Create use cases
	buildTranscriptUseCase := report.NewBuildTranscriptUseCase(files, clock)
	runSessionUseCase := session.NewRunSessionUseCase(
		session.RunSessionConfig{
			OutputDir:            cfg.Output.Dir,
			AllowNamePunctuation: cfg.App.AllowNamePunctuation,
		},
		prompter,
		passwordService,
		files,
		observer,
		buildTranscriptUseCase,
		writer,
		clock,
	)

	return &Injector{
		Config:     cfg,
		DB:         db,
		Prompter:   prompter,
		RunSession: runSessionUseCase,
	}, nil
}

// NewPasswordService returns the password service selected by cfg.Hasher.
func NewPasswordService(cfg *config.PasswordConfig) (adapter.PasswordService, error) {
	switch cfg.Hasher {
	case "bcrypt":
		return adapters.NewPasswordService(cfg.BcryptCost), nil
	case "argon2id":
		return adapters.NewArgon2PasswordService(adapters.Argon2Params{
			Time:    cfg.Argon2Time,
			Memory:  cfg.Argon2Memory,
			Threads: cfg.Argon2Threads,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", domainerror.ErrUnknownPasswordHasher, cfg.Hasher)
	}
}
