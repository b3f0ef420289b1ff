package domain

import "context"

// Sibling is the persisted slot of another performance of the same event.
type Sibling struct {
	ID    string
	Range TimeRange
}

// IntervalStore answers the range questions the validation engine needs.
type IntervalStore interface {
	// SiblingsOf returns the slots of every performance of eventID except excludeID (may be empty).
	SiblingsOf(ctx context.Context, eventID, excludeID string) ([]Sibling, error)
	// ChildrenOf returns the slots of every performance of eventID.
	ChildrenOf(ctx context.Context, eventID string) ([]TimeRange, error)
}

// EventLocker runs fn inside one storage transaction that is serialized with every
// other WithEventLock call for the same event. Reads and writes issued with the ctx
// passed to fn join that transaction. A storage-level overlap violation detected at
// commit is reported as ErrOverlapConflict.
type EventLocker interface {
	WithEventLock(ctx context.Context, eventID string, fn func(ctx context.Context) error) error
}
