// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strconv"
	"time"
)

// Transcript is the report produced at the end of a successful session.
type Transcript struct {
	Submission    *Submission
	InputContents string
	Sum           int64
	Product       int64
	OutputPath    string
	CompletedAt   time.Time
}

func formatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
