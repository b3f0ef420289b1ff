package domain

import (
	"context"
	"time"
)

// Performance is a time slot inside an event, played by one or more artists.
// Artists holds artist names.
// swagger:model Performance
type Performance struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event"`
	Artists   []string  `json:"artists"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPerformance returns a new Performance with the given fields. ID is typically set by the repository on create.
func NewPerformance(eventID string, artists []string, start, end, createdAt, updatedAt time.Time) *Performance {
	return &Performance{
		EventID:   eventID,
		Artists:   artists,
		Start:     start,
		End:       end,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Range returns the performance slot.
func (p *Performance) Range() TimeRange {
	return TimeRange{Start: p.Start, End: p.End}
}

// PerformancePatch holds the optional fields of a partial performance update. Nil means unchanged.
type PerformancePatch struct {
	EventID *string
	Artists *[]string
	Start   *time.Time
	End     *time.Time
}

// TouchesSchedule reports whether the patch changes the event, start or end.
func (p PerformancePatch) TouchesSchedule() bool {
	return p.EventID != nil || p.Start != nil || p.End != nil
}

// Merge returns the candidate performance obtained by applying p on top of perf. perf is not modified.
func (p PerformancePatch) Merge(perf *Performance) *Performance {
	out := *perf
	out.Artists = append([]string(nil), perf.Artists...)
	if p.EventID != nil {
		out.EventID = *p.EventID
	}
	if p.Artists != nil {
		out.Artists = append([]string(nil), (*p.Artists)...)
	}
	if p.Start != nil {
		out.Start = p.Start.UTC()
	}
	if p.End != nil {
		out.End = p.End.UTC()
	}
	return &out
}

// PerformanceRepository defines the interface for performance storage.
type PerformanceRepository interface {
	IntervalStore
	// Create inserts the performance and links it to the artists named in p.Artists.
	Create(ctx context.Context, p *Performance) error
	GetByID(ctx context.Context, id string) (*Performance, error)
	// ListByEventID returns the event's performances ordered by start, then id.
	ListByEventID(ctx context.Context, eventID string) ([]*Performance, error)
	// List returns a page of performances ordered by start, optionally restricted to eventID.
	List(ctx context.Context, eventID string, params PaginationParams) ([]*Performance, int, error)
	// Update rewrites event, start, end and the artist links of p.
	Update(ctx context.Context, p *Performance) error
	Delete(ctx context.Context, id string) error
}

// PerformanceService defines the performance lifecycle.
type PerformanceService interface {
	CreatePerformance(ctx context.Context, p *Performance) error
	GetPerformanceByID(ctx context.Context, performanceID string) (*Performance, error)
	ListPerformances(ctx context.Context, eventID string, params PaginationParams) ([]*Performance, int, error)
	UpdatePerformance(ctx context.Context, performanceID string, patch PerformancePatch) (*Performance, error)
	DeletePerformance(ctx context.Context, performanceID string) error
}
