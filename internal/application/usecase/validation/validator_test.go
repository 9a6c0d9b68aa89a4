package validation

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defend-your-code/form/internal/application/adapter"
	"github.com/defend-your-code/form/internal/domain/entity"
)

// fakePasswordService hashes by prefixing a per-call salt so that two hashes
// of the same password differ, like a real salted hash.
type fakePasswordService struct {
	calls   int
	hashErr error
}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	f.calls++
	return strings.Repeat("s", f.calls) + "$" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	i := strings.IndexByte(hashedPassword, '$')
	if i < 0 || hashedPassword[i+1:] != password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeFileInspector struct {
	states map[string]adapter.FileState
}

func (f *fakeFileInspector) Inspect(path string) adapter.FileState {
	if state, ok := f.states[path]; ok {
		return state
	}
	return adapter.FileStateMissing
}

func (f *fakeFileInspector) ReadFile(path string) (string, error) {
	return "", errors.New("not implemented")
}

type recordingObserver struct {
	rejections []*entity.Rejection
}

func (r *recordingObserver) OnRejection(rejection *entity.Rejection) {
	r.rejections = append(r.rejections, rejection)
}

type fixture struct {
	validator *Validator
	passwords *fakePasswordService
	files     *fakeFileInspector
	observer  *recordingObserver
	sessionID uuid.UUID
}

func newFixture(opts ...func(*Options)) *fixture {
	f := &fixture{
		passwords: &fakePasswordService{},
		files:     &fakeFileInspector{states: map[string]adapter.FileState{}},
		observer:  &recordingObserver{},
		sessionID: uuid.New(),
	}
	o := Options{SessionID: f.sessionID, OutputDir: "output"}
	for _, opt := range opts {
		opt(&o)
	}
	f.validator = NewValidator(o, f.passwords, f.files, f.observer)
	return f
}

func TestValidator_ObserverReceivesRejections(t *testing.T) {
	f := newFixture()

	f.validator.ValidateName("R2D2")
	f.validator.ValidateFirstInteger("ten")
	f.validator.ValidateName("Luke")

	require.Len(t, f.observer.rejections, 2)
	assert.Equal(t, entity.FieldFirstName, f.observer.rejections[0].Field)
	assert.Equal(t, "VAL-010003", f.observer.rejections[0].Code)
	assert.Equal(t, f.sessionID, f.observer.rejections[0].SessionID)
	assert.Equal(t, entity.FieldFirstInteger, f.observer.rejections[1].Field)
}

func TestValidator_ObserverNeverSeesRefusedInput(t *testing.T) {
	f := newFixture()
	f.files.states = map[string]adapter.FileState{
		"locked.txt":                         adapter.FileStateUnreadable,
		filepath.Join("output", "taken.txt"): adapter.FileStateReadable,
	}

	missing := f.validator.ValidateInputFile("secret-plans.txt")
	locked := f.validator.ValidateInputFile("locked.txt")
	taken := f.validator.ValidateOutputFile("taken.txt")

	assert.Contains(t, missing.Reason(), "secret-plans.txt")
	assert.Contains(t, locked.Reason(), "locked.txt")
	assert.Contains(t, taken.Reason(), "taken.txt")

	require.Len(t, f.observer.rejections, 3)
	for i, input := range []string{"secret-plans.txt", "locked.txt", "taken.txt"} {
		assert.NotContains(t, f.observer.rejections[i].Message, input)
		assert.NotEmpty(t, f.observer.rejections[i].Message)
	}
}

func TestValidator_NilObserver(t *testing.T) {
	v := NewValidator(Options{}, &fakePasswordService{}, &fakeFileInspector{}, nil)

	result := v.ValidateName("")

	assert.False(t, result.Valid())
}

func TestValidator_InstancesDoNotShareState(t *testing.T) {
	a := newFixture()
	b := newFixture()

	require.True(t, a.validator.ValidateFirstInteger("5").Valid())
	_, err := a.validator.ValidatePassword("P@ssw0rd")
	require.NoError(t, err)

	_, ok := b.validator.First()
	assert.False(t, ok)
	_, ok = b.validator.PasswordHash()
	assert.False(t, ok)
	assert.True(t, b.validator.ValidateSecondInteger("1").IsPrecondition())
}

func TestValidator_Discard(t *testing.T) {
	f := newFixture()
	require.True(t, f.validator.ValidateFirstInteger("5").Valid())
	require.True(t, f.validator.ValidateSecondInteger("6").Valid())
	_, err := f.validator.ValidatePassword("P@ssw0rd")
	require.NoError(t, err)

	f.validator.Discard()

	_, ok := f.validator.First()
	assert.False(t, ok)
	_, ok = f.validator.Pair()
	assert.False(t, ok)
	hash, ok := f.validator.PasswordHash()
	assert.False(t, ok)
	assert.Empty(t, hash)
	assert.False(t, f.validator.ConfirmPassword("P@ssw0rd").Valid())
}
