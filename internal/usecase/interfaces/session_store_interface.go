package interfaces

import (
	"context"
	"eligibility_hub/internal/domain/entities"
)

// ISessionStore abstracts the per-session submission cache (Redis).
//
// Every write is a full-record replacement; records are never partially
// patched, so a refresh can never race a stale merge. Entries expire with
// the session TTL, matching the transient ownership of the console screen.

type ISessionStore interface {
	Put(ctx context.Context, sessionID string, s entities.Submission) error
	// Get returns the zero-value Submission (empty ID) when nothing is stored.
	Get(ctx context.Context, sessionID, submissionID string) (entities.Submission, error)
	// ListTracked sweeps every session, for the poll loop.
	ListTracked(ctx context.Context) ([]entities.TrackedSubmission, error)
	Delete(ctx context.Context, sessionID, submissionID string) error
	ClearSession(ctx context.Context, sessionID string) error
}
