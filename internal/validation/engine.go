// Package validation checks event and performance time windows before they are written.
//
// Both entry points are pure: they take fully resolved candidate ranges plus the
// persisted state they must be checked against, and return either the candidate or
// a *domain.ValidationError. Merging partial input into a candidate belongs to the
// caller.
package validation

import (
	"eventlineup/internal/domain"
)

const (
	msgInvalidRange        = "The end may not be earlier than the start"
	msgOutOfEventBounds    = "Performance timeframe is out of the event timeframe"
	msgOverlapConflict     = "Performance timeframe overlaps with another"
	msgChildrenOutOfBounds = "Some performances are outside of the event timeframe"
)

// ValidatePerformanceRange checks candidate against its event window and against
// the slots of the other performances of that event. The sibling whose ID equals
// excludeID is ignored, which lets an update keep its own persisted slot out of
// the comparison.
func ValidatePerformanceRange(candidate domain.TimeRange, event *domain.Event, siblings []domain.Sibling, excludeID string) (domain.TimeRange, error) {
	if !candidate.Valid() {
		return domain.TimeRange{}, domain.NewValidationError(domain.ErrInvalidRange, msgInvalidRange, "end")
	}
	if !event.Range().Contains(candidate) {
		return domain.TimeRange{}, domain.NewValidationError(domain.ErrOutOfEventBounds, msgOutOfEventBounds, "start", "end")
	}
	if _, ok := FirstOverlap(candidate, siblings, excludeID); ok {
		return domain.TimeRange{}, domain.NewValidationError(domain.ErrOverlapConflict, msgOverlapConflict, "start", "end")
	}
	return candidate, nil
}

// ValidateEventRange checks a candidate event window against the slots of the
// event's current performances. Pass nil children on create.
func ValidateEventRange(candidate domain.TimeRange, children []domain.TimeRange) (domain.TimeRange, error) {
	if !candidate.Valid() {
		return domain.TimeRange{}, domain.NewValidationError(domain.ErrInvalidRange, msgInvalidRange, "end")
	}
	for _, child := range children {
		if !candidate.Contains(child) {
			return domain.TimeRange{}, domain.NewValidationError(domain.ErrChildrenOutOfBounds, msgChildrenOutOfBounds, "start", "end")
		}
	}
	return candidate, nil
}

// FirstOverlap returns the first sibling (other than excludeID) whose slot overlaps candidate.
func FirstOverlap(candidate domain.TimeRange, siblings []domain.Sibling, excludeID string) (domain.Sibling, bool) {
	for _, s := range siblings {
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		if candidate.Overlaps(s.Range) {
			return s, true
		}
	}
	return domain.Sibling{}, false
}
