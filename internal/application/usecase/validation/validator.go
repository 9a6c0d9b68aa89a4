// Package validation contains the field validators of the interactive form.
package validation

import (
	"github.com/google/uuid"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/domain/entity"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/domain/valueobject"
)

// Options configures a Validator.
type Options struct {
	// SessionID tags every rejection reported to the observer.
	SessionID uuid.UUID
	// OutputDir is where output files are checked for prior existence.
	OutputDir string
	// AllowNamePunctuation extends the name alphabet with '-' and '\''.
	AllowNamePunctuation bool
}

// Validator checks raw form answers one field at a time.
//
// It carries the state of exactly one session: the accepted first integer
// (needed by the second) and the hash of the accepted password (needed by
// the confirmation). It is not safe for concurrent use; create one per session.
type Validator struct {
	opts            Options
	passwordService adapter.PasswordService
	files           adapter.FileInspector
	observer        adapter.RejectionObserver

	first   *int32
	second  *int32
	hash    string
	hashSet bool
}

// NewValidator creates a new Validator for one session.
// observer may be nil.
func NewValidator(
	opts Options,
	passwordService adapter.PasswordService,
	files adapter.FileInspector,
	observer adapter.RejectionObserver,
) *Validator {
	return &Validator{
		opts:            opts,
		passwordService: passwordService,
		files:           files,
		observer:        observer,
	}
}

// SessionID returns the session the validator belongs to.
func (v *Validator) SessionID() uuid.UUID {
	return v.opts.SessionID
}

// First returns the last accepted first integer.
func (v *Validator) First() (int32, bool) {
	if v.first == nil {
		return 0, false
	}
	return *v.first, true
}

// Pair returns both integers once the second has been accepted against the current first.
func (v *Validator) Pair() (valueobject.Int32Pair, bool) {
	if v.first == nil || v.second == nil {
		return valueobject.Int32Pair{}, false
	}
	return valueobject.Int32Pair{First: *v.first, Second: *v.second}, true
}

// PasswordHash returns the encoded hash of the last accepted password.
func (v *Validator) PasswordHash() (string, bool) {
	return v.hash, v.hashSet
}

// Discard forgets all session state. The validator behaves as new afterwards.
func (v *Validator) Discard() {
	v.first = nil
	v.second = nil
	v.hash = ""
	v.hashSet = false
}

// reject builds an invalid Result and reports it to the observer.
func (v *Validator) reject(
	field entity.Field,
	code domainerror.ValidationErrorCode,
	message string,
	cause error,
) valueobject.Result {
	return v.rejectRedacted(field, code, message, message, cause)
}

// rejectRedacted is reject for messages that quote user input. The observer
// only sees auditMessage.
func (v *Validator) rejectRedacted(
	field entity.Field,
	code domainerror.ValidationErrorCode,
	message string,
	auditMessage string,
	cause error,
) valueobject.Result {
	if v.observer != nil {
		v.observer.OnRejection(entity.NewRejection(v.opts.SessionID, field, string(code), auditMessage))
	}
	return valueobject.Invalid(domainerror.NewValidationError(code, message, cause))
}
