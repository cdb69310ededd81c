package user

import (
	"time"

	"github.com/google/uuid"
)

// Record is a domain entity representing a registered user and their
// learning state. Records are keyed by lowercase email in the persisted
// document; Email is filled in by the repository on load and never
// serialized inside the record itself.
type Record struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"-"`
	Name         string         `json:"name"`
	PasswordHash string         `json:"password_hash"`
	Progress     int            `json:"progress"`
	SavedRoles   []string       `json:"savedRoles"`
	History      []HistoryEntry `json:"history"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// HistoryEntry is one append-only event: either a progress snapshot or an
// action tag. Progress is a pointer so a snapshot of 0 survives roundtrips.
type HistoryEntry struct {
	T        int64  `json:"t"`
	Progress *int   `json:"progress,omitempty"`
	Action   string `json:"action,omitempty"`
}

// Snapshot builds a progress snapshot entry.
func Snapshot(t int64, progress int) HistoryEntry {
	return HistoryEntry{T: t, Progress: &progress}
}

// ActionTag builds an action entry.
func ActionTag(t int64, action string) HistoryEntry {
	return HistoryEntry{T: t, Action: action}
}
