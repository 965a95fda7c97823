package models

import (
	"fmt"
	"regexp"
	"time"
)

var streamNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidateStreamName ensures the stream name can be used verbatim inside a table identifier.
func ValidateStreamName(stream string) error {
	if !streamNameRegex.MatchString(stream) {
		return fmt.Errorf("invalid stream name %q, only letters, digits and underscores are allowed", stream)
	}

	return nil
}

// Record is a single row destined for a stream's raw table.
type Record struct {
	id        string
	emittedAt time.Time
	payload   string
}

func NewRecord(id string, emittedAt time.Time, payload string) Record {
	return Record{
		id:        id,
		emittedAt: emittedAt,
		payload:   payload,
	}
}

func (r Record) ID() string {
	return r.id
}

func (r Record) EmittedAt() time.Time {
	return r.emittedAt
}

// Payload is the pre-serialized data, it is never parsed.
func (r Record) Payload() string {
	return r.payload
}
