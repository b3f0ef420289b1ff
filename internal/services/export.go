package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"eventlineup/internal/clock"
	"eventlineup/internal/domain"

	"github.com/google/uuid"
)

// EventDatasetName prefixes the files written for event exports.
const EventDatasetName = "event"

var eventDatasetColumns = []string{"id", "name", "start", "end"}

type exportService struct {
	eventRepo      domain.EventRepository
	sink           domain.ExportSink
	clock          clock.Clock
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewExportService(eventRepo domain.EventRepository, sink domain.ExportSink, clk clock.Clock, logger *slog.Logger, timeout time.Duration) domain.ExportService {
	return &exportService{
		eventRepo:      eventRepo,
		sink:           sink,
		clock:          clk,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// InitiateEventExport snapshots every event and hands the job to the sink. It never waits
// for the export itself; a job the sink refuses is logged and still acknowledged.
func (s *exportService) InitiateEventExport(ctx context.Context, webhookURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateWebhookURL(webhookURL); err != nil {
		return "", err
	}

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("list events: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate job id: %w", err)
	}

	job := domain.ExportJob{
		ID:          id.String(),
		Dataset:     EventDataset(events),
		Destination: webhookURL,
		RequestedAt: s.clock.Now(),
	}
	if !s.sink.Submit(job) {
		s.logger.WarnContext(ctx, "export queue full, job dropped", "job_id", job.ID, "rows", len(job.Dataset.Rows))
	}
	return job.ID, nil
}

// EventDataset flattens events into id,name,start,end records with RFC 3339 UTC times.
func EventDataset(events []*domain.Event) domain.Dataset {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.ID,
			e.Name,
			e.Start.UTC().Format(time.RFC3339),
			e.End.UTC().Format(time.RFC3339),
		})
	}
	return domain.Dataset{
		Name:    EventDatasetName,
		Columns: append([]string(nil), eventDatasetColumns...),
		Rows:    rows,
	}
}

func validateWebhookURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationError(domain.ErrInvalidInput, "Enter a valid URL.", "webhook_url")
	}
	return nil
}
