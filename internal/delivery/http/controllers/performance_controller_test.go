package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventlineup/internal/delivery/http/helpers"
	"eventlineup/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceController_CreatePerformance(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
		wantFields []string
		check      func(t *testing.T, p *domain.Performance)
	}{
		{
			name:       "success",
			body:       `{"event":"ev-1","artists":["Band","Singer"],"start":"2025-07-01T13:00:00Z","end":"2025-07-01T14:00:00Z"}`,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, p *domain.Performance) {
				assert.Equal(t, "ev-1", p.EventID)
				assert.Equal(t, []string{"Band", "Singer"}, p.Artists)
			},
		},
		{
			name:       "empty artist list is accepted",
			body:       `{"event":"ev-1","artists":[],"start":"2025-07-01T13:00:00Z","end":"2025-07-01T14:00:00Z"}`,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, p *domain.Performance) {
				assert.Empty(t, p.Artists)
			},
		},
		{
			name:       "missing artists and times",
			body:       `{"event":"ev-1"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
			wantFields: []string{"artists", "start", "end"},
		},
		{
			name:       "overlap",
			body:       `{"event":"ev-1","artists":[],"start":"2025-07-01T13:00:00Z","end":"2025-07-01T14:00:00Z"}`,
			fakeErr:    domain.NewValidationError(domain.ErrOverlapConflict, "This performance overlaps another performance.", "start", "end"),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeOverlapConflict,
			wantFields: []string{"start", "end"},
		},
		{
			name:       "outside event",
			body:       `{"event":"ev-1","artists":[],"start":"2025-07-01T10:00:00Z","end":"2025-07-01T14:00:00Z"}`,
			fakeErr:    domain.NewValidationError(domain.ErrOutOfEventBounds, "Performance must be within the event.", "start"),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeOutOfEventBounds,
			wantFields: []string{"start"},
		},
		{
			name:       "unknown event",
			body:       `{"event":"nope","artists":[],"start":"2025-07-01T13:00:00Z","end":"2025-07-01T14:00:00Z"}`,
			fakeErr:    domain.NewValidationError(domain.ErrNotFound, "Invalid event.", "event"),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
			wantFields: []string{"event"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakePerformanceService{err: tt.fakeErr}
			ctrl := NewPerformanceController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/performances", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.CreatePerformance(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			if tt.wantCode == "" {
				require.Nil(t, env.Error)
				var got domain.Performance
				require.NoError(t, json.Unmarshal(env.Data, &got))
				assert.Equal(t, "perf-created", got.ID)
				tt.check(t, fake.lastCreate)
				return
			}
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			for _, f := range tt.wantFields {
				assert.Contains(t, env.Error.Fields, f)
			}
		})
	}
}

func TestPerformanceController_ListPerformances(t *testing.T) {
	start := time.Date(2025, 7, 1, 13, 0, 0, 0, time.UTC)
	fake := &fakePerformanceService{
		performances: []*domain.Performance{{ID: "p-1", EventID: "ev-1", Artists: []string{}, Start: start, End: start.Add(time.Hour)}},
		total:        1,
	}
	ctrl := NewPerformanceController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/performances?event=ev-1", nil)
	rr := httptest.NewRecorder()

	ctrl.ListPerformances(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ev-1", fake.lastEventID)
	var got ListPerformancesResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p-1", got.Items[0].ID)
	assert.Equal(t, 1, got.Pagination.Total)
}

func TestPerformanceController_GetPerformanceByID_NotFound(t *testing.T) {
	ctrl := NewPerformanceController(testLogger, &fakePerformanceService{err: domain.ErrNotFound})
	req := httptest.NewRequest(http.MethodGet, "/performances/p-9", nil)
	req.SetPathValue("performanceID", "p-9")
	rr := httptest.NewRecorder()

	ctrl.GetPerformanceByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, "performance not found", env.Error.Message)
}

func TestPerformanceController_PatchPerformance(t *testing.T) {
	fake := &fakePerformanceService{performance: &domain.Performance{ID: "p-1"}}
	ctrl := NewPerformanceController(testLogger, fake)
	req := httptest.NewRequest(http.MethodPatch, "/performances/p-1", bytes.NewBufferString(`{"end":"2025-07-01T15:00:00Z"}`))
	req.SetPathValue("performanceID", "p-1")
	rr := httptest.NewRecorder()

	ctrl.PatchPerformance(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "p-1", fake.lastID)
	assert.Nil(t, fake.lastPatch.EventID)
	assert.Nil(t, fake.lastPatch.Artists)
	assert.Nil(t, fake.lastPatch.Start)
	require.NotNil(t, fake.lastPatch.End)
	assert.True(t, fake.lastPatch.TouchesSchedule())
}

func TestPerformanceController_PatchPerformance_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
		wantFields map[string]string
	}{
		{
			name:       "null event",
			body:       `{"event":null}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
			wantFields: map[string]string{"event": "This field may not be null."},
		},
		{
			name:       "null start and artists",
			body:       `{"start":null,"artists":null}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
			wantFields: map[string]string{"start": "This field may not be null.", "artists": "This field may not be null."},
		},
		{
			name:       "lost a concurrent move",
			body:       `{"end":"2025-07-01T15:00:00Z"}`,
			err:        fmt.Errorf("update performance p-1: %w", domain.ErrConcurrentModification),
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakePerformanceService{err: tt.err}
			ctrl := NewPerformanceController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPatch, "/performances/p-1", bytes.NewBufferString(tt.body))
			req.SetPathValue("performanceID", "p-1")
			rr := httptest.NewRecorder()

			ctrl.PatchPerformance(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, env.Error.Fields)
				assert.Empty(t, fake.lastID)
			}
		})
	}
}

func TestPerformanceController_ReplacePerformance(t *testing.T) {
	t.Run("full body becomes full patch", func(t *testing.T) {
		fake := &fakePerformanceService{performance: &domain.Performance{ID: "p-1"}}
		ctrl := NewPerformanceController(testLogger, fake)
		body := `{"event":"ev-2","artists":["Band"],"start":"2025-07-01T13:00:00Z","end":"2025-07-01T14:00:00Z"}`
		req := httptest.NewRequest(http.MethodPut, "/performances/p-1", bytes.NewBufferString(body))
		req.SetPathValue("performanceID", "p-1")
		rr := httptest.NewRecorder()

		ctrl.ReplacePerformance(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, fake.lastPatch.EventID)
		assert.Equal(t, "ev-2", *fake.lastPatch.EventID)
		require.NotNil(t, fake.lastPatch.Artists)
		assert.Equal(t, []string{"Band"}, *fake.lastPatch.Artists)
		assert.NotNil(t, fake.lastPatch.Start)
		assert.NotNil(t, fake.lastPatch.End)
	})

	t.Run("partial body is rejected", func(t *testing.T) {
		fake := &fakePerformanceService{}
		ctrl := NewPerformanceController(testLogger, fake)
		req := httptest.NewRequest(http.MethodPut, "/performances/p-1", bytes.NewBufferString(`{"end":"2025-07-01T15:00:00Z"}`))
		req.SetPathValue("performanceID", "p-1")
		rr := httptest.NewRecorder()

		ctrl.ReplacePerformance(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, fake.lastID)
	})
}

func TestPerformanceController_DeletePerformance(t *testing.T) {
	fake := &fakePerformanceService{}
	ctrl := NewPerformanceController(testLogger, fake)
	req := httptest.NewRequest(http.MethodDelete, "/performances/p-1", nil)
	req.SetPathValue("performanceID", "p-1")
	rr := httptest.NewRecorder()

	ctrl.DeletePerformance(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "p-1", fake.lastID)
}
