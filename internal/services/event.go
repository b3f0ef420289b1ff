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

const msgRequired = "This field is required."

type eventService struct {
	eventRepo       domain.EventRepository
	performanceRepo domain.PerformanceRepository
	locker          domain.EventLocker
	clock           clock.Clock
	metrics         *metrics.Metrics
	contextTimeout  time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	performanceRepo domain.PerformanceRepository,
	locker domain.EventLocker,
	clk clock.Clock,
	m *metrics.Metrics,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:       eventRepo,
		performanceRepo: performanceRepo,
		locker:          locker,
		clock:           clk,
		metrics:         m,
		contextTimeout:  timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event.Name = strings.TrimSpace(event.Name)
	if event.Name == "" {
		return domain.NewValidationError(domain.ErrInvalidInput, msgRequired, "name")
	}

	window, err := validation.ValidateEventRange(domain.TimeRange{Start: event.Start.UTC(), End: event.End.UTC()}, nil)
	if err != nil {
		s.metrics.ObserveRejection(err)
		return err
	}
	event.Start, event.End = window.Start, window.End

	now := s.clock.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, []*domain.Performance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get event: %w", err)
	}

	performances, err := s.performanceRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("list performances: %w", err)
	}
	if performances == nil {
		performances = []*domain.Performance{}
	}

	return event, performances, nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

// UpdateEvent applies patch on top of the persisted event. When the window changes, every
// current performance must still fit inside it; otherwise nothing is written.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domain.NewValidationError(domain.ErrInvalidInput, msgRequired, "name")
		}
		patch.Name = &name
	}

	var updated *domain.Event
	err := s.locker.WithEventLock(ctx, eventID, func(ctx context.Context) error {
		current, err := s.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			return err
		}

		candidate := patch.Merge(current)
		if patch.TouchesRange() {
			children, err := s.performanceRepo.ChildrenOf(ctx, eventID)
			if err != nil {
				return fmt.Errorf("load performances: %w", err)
			}
			if _, err := validation.ValidateEventRange(candidate.Range(), children); err != nil {
				return err
			}
		}

		candidate.UpdatedAt = s.clock.Now()
		if err := s.eventRepo.Update(ctx, candidate); err != nil {
			return err
		}
		updated = candidate
		return nil
	})
	if err != nil {
		s.metrics.ObserveRejection(err)
		return nil, err
	}
	return updated, nil
}

// DeleteEvent removes the event. Its performances go with it.
func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.Delete(ctx, eventID)
}
