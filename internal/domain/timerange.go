package domain

import "time"

// TimeRange is a half-open interval [Start, End) on the single reference clock (UTC).
// A TimeRange obtained from NewTimeRange always satisfies Start <= End.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeRange returns the range [start, end) normalized to UTC.
// It fails with a ValidationError wrapping ErrInvalidRange when start is after end.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	r := TimeRange{Start: start.UTC(), End: end.UTC()}
	if !r.Valid() {
		return TimeRange{}, NewValidationError(ErrInvalidRange, "The end may not be earlier than the start", "end")
	}
	return r, nil
}

// Valid reports whether Start <= End.
func (r TimeRange) Valid() bool {
	return !r.Start.After(r.End)
}

// IsEmpty reports whether the range has zero length.
func (r TimeRange) IsEmpty() bool {
	return r.Start.Equal(r.End)
}

// Duration returns End - Start.
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains reports whether other lies within r, boundaries included.
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// Overlaps reports whether r and other share an instant strictly inside both.
// Ranges that only touch at an endpoint do not overlap, and an empty range
// overlaps nothing, itself included.
func (r TimeRange) Overlaps(other TimeRange) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}
