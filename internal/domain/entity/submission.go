// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Submission holds the accepted values of one interactive session.
// The password is only present as its encoded salted hash.
type Submission struct {
	SessionID      uuid.UUID
	FirstName      string
	LastName       string
	FirstInteger   int32
	SecondInteger  int32
	InputFileName  string
	OutputFileName string
	PasswordHash   string
	StartedAt      time.Time
}

// NewSubmission creates an empty Submission for a new session.
func NewSubmission(startedAt time.Time) *Submission {
	return &Submission{
		SessionID: uuid.New(),
		StartedAt: startedAt.UTC(),
	}
}

// DefaultOutputFileName returns "<last>_<first>_<unix millis>.txt".
// Name characters outside [A-Za-z0-9_-] are dropped so the result is
// always an acceptable output file name.
func (s *Submission) DefaultOutputFileName(now time.Time) string {
	return fileSafe(s.LastName) + "_" + fileSafe(s.FirstName) + "_" + formatMillis(now) + ".txt"
}

func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return -1
	}, name)
}
