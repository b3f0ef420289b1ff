package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"eventlineup/internal/delivery/http/helpers"
	"eventlineup/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// envelope is the decoded response body with data left raw.
type envelope struct {
	Data  json.RawMessage   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err          error
	event        *domain.Event
	performances []*domain.Performance
	events       []*domain.Event
	total        int
	lastCreate   *domain.Event
	lastID       string
	lastPatch    domain.EventPatch
	lastParams   domain.PaginationParams
}

func (f *fakeEventService) CreateEvent(_ context.Context, event *domain.Event) error {
	f.lastCreate = event
	if f.err != nil {
		return f.err
	}
	event.ID = "ev-created"
	return nil
}

func (f *fakeEventService) GetEventByID(_ context.Context, eventID string) (*domain.Event, []*domain.Performance, error) {
	f.lastID = eventID
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.event, f.performances, nil
}

func (f *fakeEventService) ListEvents(_ context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastParams = params
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.events, f.total, nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, eventID string, patch domain.EventPatch) (*domain.Event, error) {
	f.lastID = eventID
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) DeleteEvent(_ context.Context, eventID string) error {
	f.lastID = eventID
	return f.err
}

// fakeExportService implements domain.ExportService for handler tests.
type fakeExportService struct {
	err     error
	jobID   string
	lastURL string
}

func (f *fakeExportService) InitiateEventExport(_ context.Context, webhookURL string) (string, error) {
	f.lastURL = webhookURL
	if f.err != nil {
		return "", f.err
	}
	return f.jobID, nil
}

// fakePerformanceService implements domain.PerformanceService for handler tests.
type fakePerformanceService struct {
	err          error
	performance  *domain.Performance
	performances []*domain.Performance
	total        int
	lastCreate   *domain.Performance
	lastID       string
	lastEventID  string
	lastPatch    domain.PerformancePatch
}

func (f *fakePerformanceService) CreatePerformance(_ context.Context, p *domain.Performance) error {
	f.lastCreate = p
	if f.err != nil {
		return f.err
	}
	p.ID = "perf-created"
	return nil
}

func (f *fakePerformanceService) GetPerformanceByID(_ context.Context, id string) (*domain.Performance, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.performance, nil
}

func (f *fakePerformanceService) ListPerformances(_ context.Context, eventID string, _ domain.PaginationParams) ([]*domain.Performance, int, error) {
	f.lastEventID = eventID
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.performances, f.total, nil
}

func (f *fakePerformanceService) UpdatePerformance(_ context.Context, id string, patch domain.PerformancePatch) (*domain.Performance, error) {
	f.lastID = id
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return f.performance, nil
}

func (f *fakePerformanceService) DeletePerformance(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

// fakeArtistService implements domain.ArtistService for handler tests.
type fakeArtistService struct {
	err        error
	artist     *domain.Artist
	artists    []*domain.Artist
	total      int
	lastCreate *domain.Artist
	lastID     string
}

func (f *fakeArtistService) CreateArtist(_ context.Context, artist *domain.Artist) error {
	f.lastCreate = artist
	if f.err != nil {
		return f.err
	}
	artist.ID = "ar-created"
	return nil
}

func (f *fakeArtistService) GetArtistByID(_ context.Context, id string) (*domain.Artist, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.artist, nil
}

func (f *fakeArtistService) ListArtists(_ context.Context, _ domain.PaginationParams) ([]*domain.Artist, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.artists, f.total, nil
}

func (f *fakeArtistService) DeleteArtist(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}
