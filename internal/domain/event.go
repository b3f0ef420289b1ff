package domain

import (
	"context"
	"time"
)

// Event is a named time window that bounds its performances.
// swagger:model Event
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(name string, start, end, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:      name,
		Start:     start,
		End:       end,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Range returns the event window.
func (e *Event) Range() TimeRange {
	return TimeRange{Start: e.Start, End: e.End}
}

// EventPatch holds the optional fields of a partial event update. Nil means unchanged.
type EventPatch struct {
	Name  *string
	Start *time.Time
	End   *time.Time
}

// TouchesRange reports whether the patch changes start or end.
func (p EventPatch) TouchesRange() bool {
	return p.Start != nil || p.End != nil
}

// Merge returns the candidate event obtained by applying p on top of e. e is not modified.
func (p EventPatch) Merge(e *Event) *Event {
	out := *e
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Start != nil {
		out.Start = p.Start.UTC()
	}
	if p.End != nil {
		out.End = p.End.UTC()
	}
	return &out
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	ListAll(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the event lifecycle.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	// GetEventByID returns the event and its performances ordered by start.
	GetEventByID(ctx context.Context, eventID string) (*Event, []*Performance, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	UpdateEvent(ctx context.Context, eventID string, patch EventPatch) (*Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
