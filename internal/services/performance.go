package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventlineup/internal/clock"
	"eventlineup/internal/domain"
	"eventlineup/internal/pkg/metrics"
	"eventlineup/internal/validation"
)

// maxMoveAttempts bounds how often UpdatePerformance retries when the performance is
// moved to another event between the unlocked read and the locked one.
const maxMoveAttempts = 3

var errMovedConcurrently = errors.New("performance moved to another event concurrently")

type performanceService struct {
	performanceRepo domain.PerformanceRepository
	eventRepo       domain.EventRepository
	artistRepo      domain.ArtistRepository
	locker          domain.EventLocker
	clock           clock.Clock
	metrics         *metrics.Metrics
	contextTimeout  time.Duration
}

func NewPerformanceService(performanceRepo domain.PerformanceRepository,
	eventRepo domain.EventRepository,
	artistRepo domain.ArtistRepository,
	locker domain.EventLocker,
	clk clock.Clock,
	m *metrics.Metrics,
	timeout time.Duration,
) domain.PerformanceService {
	return &performanceService{
		performanceRepo: performanceRepo,
		eventRepo:       eventRepo,
		artistRepo:      artistRepo,
		locker:          locker,
		clock:           clk,
		metrics:         m,
		contextTimeout:  timeout,
	}
}

func (s *performanceService) CreatePerformance(ctx context.Context, p *domain.Performance) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(p.EventID) == "" {
		return domain.NewValidationError(domain.ErrInvalidInput, msgRequired, "event")
	}
	artists, err := s.resolveArtists(ctx, p.Artists)
	if err != nil {
		s.metrics.ObserveRejection(err)
		return err
	}
	p.Artists = artists

	err = s.withEventLock(ctx, p.EventID, func(ctx context.Context) error {
		event, err := s.lookupEvent(ctx, p.EventID)
		if err != nil {
			return err
		}
		siblings, err := s.performanceRepo.SiblingsOf(ctx, p.EventID, "")
		if err != nil {
			return fmt.Errorf("load siblings: %w", err)
		}
		slot, err := validation.ValidatePerformanceRange(domain.TimeRange{Start: p.Start.UTC(), End: p.End.UTC()}, event, siblings, "")
		if err != nil {
			return err
		}

		now := s.clock.Now()
		p.Start, p.End = slot.Start, slot.End
		p.CreatedAt = now
		p.UpdatedAt = now
		return s.performanceRepo.Create(ctx, p)
	})
	if err != nil {
		s.metrics.ObserveRejection(err)
		return err
	}
	return nil
}

func (s *performanceService) GetPerformanceByID(ctx context.Context, performanceID string) (*domain.Performance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.performanceRepo.GetByID(ctx, performanceID)
}

func (s *performanceService) ListPerformances(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Performance, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	perfs, total, err := s.performanceRepo.List(ctx, eventID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list performances: %w", err)
	}
	if perfs == nil {
		perfs = []*domain.Performance{}
	}
	return perfs, total, nil
}

// UpdatePerformance merges patch into the persisted performance and validates the
// result against the target event, excluding the performance's own slot.
func (s *performanceService) UpdatePerformance(ctx context.Context, performanceID string, patch domain.PerformancePatch) (*domain.Performance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if patch.EventID != nil && strings.TrimSpace(*patch.EventID) == "" {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, msgRequired, "event")
	}
	if patch.Artists != nil {
		artists, err := s.resolveArtists(ctx, *patch.Artists)
		if err != nil {
			s.metrics.ObserveRejection(err)
			return nil, err
		}
		patch.Artists = &artists
	}

	var updated *domain.Performance
	var err error
	for attempt := 0; attempt < maxMoveAttempts; attempt++ {
		updated, err = s.updateOnce(ctx, performanceID, patch)
		if !errors.Is(err, errMovedConcurrently) {
			break
		}
	}
	if errors.Is(err, errMovedConcurrently) {
		err = fmt.Errorf("update performance %s: %w", performanceID, domain.ErrConcurrentModification)
	}
	if err != nil {
		s.metrics.ObserveRejection(err)
		return nil, err
	}
	return updated, nil
}

func (s *performanceService) updateOnce(ctx context.Context, performanceID string, patch domain.PerformancePatch) (*domain.Performance, error) {
	current, err := s.performanceRepo.GetByID(ctx, performanceID)
	if err != nil {
		return nil, err
	}
	target := current.EventID
	if patch.EventID != nil {
		target = *patch.EventID
	}

	var updated *domain.Performance
	err = s.withEventLock(ctx, target, func(ctx context.Context) error {
		current, err := s.performanceRepo.GetByID(ctx, performanceID)
		if err != nil {
			return err
		}
		if patch.EventID == nil && current.EventID != target {
			return errMovedConcurrently
		}

		candidate := patch.Merge(current)
		if patch.TouchesSchedule() {
			event, err := s.lookupEvent(ctx, candidate.EventID)
			if err != nil {
				return err
			}
			siblings, err := s.performanceRepo.SiblingsOf(ctx, candidate.EventID, performanceID)
			if err != nil {
				return fmt.Errorf("load siblings: %w", err)
			}
			if _, err := validation.ValidatePerformanceRange(candidate.Range(), event, siblings, performanceID); err != nil {
				return err
			}
		}

		candidate.UpdatedAt = s.clock.Now()
		if err := s.performanceRepo.Update(ctx, candidate); err != nil {
			return err
		}
		updated = candidate
		return nil
	})
	return updated, err
}

func (s *performanceService) DeletePerformance(ctx context.Context, performanceID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.performanceRepo.Delete(ctx, performanceID)
}

// withEventLock runs fn under the lock of a referenced event. A lock that refuses the
// id as unknown before fn runs is reported like any other missing reference.
func (s *performanceService) withEventLock(ctx context.Context, eventID string, fn func(ctx context.Context) error) error {
	ran := false
	err := s.locker.WithEventLock(ctx, eventID, func(ctx context.Context) error {
		ran = true
		return fn(ctx)
	})
	if !ran && errors.Is(err, domain.ErrNotFound) {
		if _, ok := domain.AsValidationError(err); !ok {
			return eventNotFound(eventID)
		}
	}
	return err
}

func eventNotFound(eventID string) error {
	return domain.NewValidationError(domain.ErrNotFound, fmt.Sprintf("Invalid pk %q - object does not exist.", eventID), "event")
}

// lookupEvent resolves a referenced event. A missing event is a field error on "event".
func (s *performanceService) lookupEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, eventNotFound(eventID)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// resolveArtists dedupes names and checks that every one names an existing artist.
func (s *performanceService) resolveArtists(ctx context.Context, names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	if len(out) == 0 {
		return out, nil
	}

	found, err := s.artistRepo.GetByNames(ctx, out)
	if err != nil {
		return nil, fmt.Errorf("resolve artists: %w", err)
	}
	known := make(map[string]struct{}, len(found))
	for _, a := range found {
		known[a.Name] = struct{}{}
	}
	for _, n := range out {
		if _, ok := known[n]; !ok {
			return nil, domain.NewValidationError(domain.ErrNotFound, fmt.Sprintf("Object with name=%s does not exist.", n), "artists")
		}
	}
	return out, nil
}
