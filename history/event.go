// Package history keeps an append-only ledger of lending activity in
// SQLite, so sessions can review who borrowed and returned which books.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var marshaler = jsoniter.ConfigFastest

// Kinds of lending events the ledger records.
const (
	KindBorrowed = "BookBorrowed"
	KindReturned = "BookReturned"
)

// Payload carries the borrower and book details of a lending event.
type Payload struct {
	User   string `json:"user"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// Event is one immutable entry in the lending ledger.
type Event struct {
	ID         uuid.UUID
	Kind       string
	OccurredAt time.Time
	Payload    Payload
}

// NewEvent stamps a fresh event with a random ID and the current time.
// Timestamps are truncated to microseconds, the resolution the ledger
// stores.
func NewEvent(kind, user, title, author, genre string) Event {
	return Event{
		ID:         uuid.New(),
		Kind:       kind,
		OccurredAt: time.Now().UTC().Truncate(time.Microsecond),
		Payload: Payload{
			User:   user,
			Title:  title,
			Author: author,
			Genre:  genre,
		},
	}
}

func (e Event) marshalPayload() ([]byte, error) {
	data, err := marshaler.Marshal(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}
