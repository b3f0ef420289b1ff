package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventlineup/internal/domain"

	"github.com/google/uuid"
)

// eventLockNamespace is the first key of the two-key advisory lock taken per event.
const eventLockNamespace = 4127

type eventLocker struct {
	DB *sql.DB
}

// NewEventLocker returns a domain.EventLocker that serializes work per event with a
// transaction-scoped advisory lock.
func NewEventLocker(db *sql.DB) domain.EventLocker {
	return &eventLocker{DB: db}
}

// WithEventLock runs fn inside a transaction holding the lock for eventID. The lock key
// is the canonical UUID text, so every spelling of one id contends on the same lock.
// An id that is not a UUID cannot name an event and fails with domain.ErrNotFound
// before any transaction is opened.
func (l *eventLocker) WithEventLock(ctx context.Context, eventID string, fn func(ctx context.Context) error) error {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return fmt.Errorf("event %q: %w", eventID, domain.ErrNotFound)
	}
	key := id.String()
	err = withTx(ctx, l.DB, func(txCtx context.Context) error {
		if _, err := conn(txCtx, l.DB).ExecContext(txCtx, `SELECT pg_advisory_xact_lock($1, hashtext($2))`, eventLockNamespace, key); err != nil {
			return err
		}
		return fn(txCtx)
	})
	if isExclusionViolation(err) {
		return overlapConflict()
	}
	return err
}

func overlapConflict() error {
	return domain.NewValidationError(domain.ErrOverlapConflict, "Performance timeframe overlaps with another", "start", "end")
}
