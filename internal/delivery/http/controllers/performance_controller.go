package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventlineup/internal/delivery/http/helpers"
	"eventlineup/internal/domain"
)

const performanceNotFound = "performance not found"

// PerformanceRequest is the request body for POST /performances and PUT /performances/{performanceID}.
// Artists are artist names.
type PerformanceRequest struct {
	Event   string     `json:"event"`
	Artists []string   `json:"artists"`
	Start   *time.Time `json:"start"`
	End     *time.Time `json:"end"`
}

// Validate implements Validator. artists must be present but may be empty.
func (p PerformanceRequest) Validate() map[string]string {
	errs := map[string]string{}
	if p.Event == "" {
		errs["event"] = msgRequired
	}
	if p.Artists == nil {
		errs["artists"] = msgRequired
	}
	if p.Start == nil {
		errs["start"] = msgRequired
	}
	if p.End == nil {
		errs["end"] = msgRequired
	}
	return errs
}

// PatchPerformanceRequest is the request body for PATCH /performances/{performanceID}. Omitted fields are unchanged.
// Explicit nulls are rejected.
type PatchPerformanceRequest struct {
	Event   helpers.Optional[string]    `json:"event" swaggertype:"string"`
	Artists helpers.Optional[[]string]  `json:"artists" swaggertype:"array,string"`
	Start   helpers.Optional[time.Time] `json:"start" swaggertype:"string" format:"date-time"`
	End     helpers.Optional[time.Time] `json:"end" swaggertype:"string" format:"date-time"`
}

// Validate implements Validator.
func (p PatchPerformanceRequest) Validate() map[string]string {
	return helpers.NullFields(nil, msgNotNull, map[string]bool{
		"event":   p.Event.Null,
		"artists": p.Artists.Null,
		"start":   p.Start.Null,
		"end":     p.End.Null,
	})
}

// PerformanceSuccessResponse is the success response envelope for endpoints returning one performance.
type PerformanceSuccessResponse struct {
	Data  *domain.Performance `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type PerformanceController struct {
	Logger  *slog.Logger
	Service domain.PerformanceService
}

func NewPerformanceController(logger *slog.Logger, svc domain.PerformanceService) *PerformanceController {
	return &PerformanceController{
		Logger:  logger,
		Service: svc,
	}
}

// CreatePerformance godoc
// @Summary Create a performance
// @Description Schedules a performance inside an event. The slot must lie within the event window and must not overlap another performance of the event; touching slots are allowed.
// @Tags performances
// @Accept json
// @Produce json
// @Param body body PerformanceRequest true "Performance data"
// @Success 201 {object} controllers.PerformanceSuccessResponse "data contains the created performance"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, invalid_range, out_of_event_bounds or overlap_conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /performances [post]
func (c *PerformanceController) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	var req PerformanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p := domain.NewPerformance(req.Event, req.Artists, *req.Start, *req.End, time.Time{}, time.Time{})
	if err := c.Service.CreatePerformance(r.Context(), p); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, performanceNotFound)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, p)
}

// ListPerformancesResponse is the data payload for GET /performances (200).
type ListPerformancesResponse struct {
	Items      []*domain.Performance  `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListPerformancesSuccessResponse is the success response envelope for GET /performances (200).
type ListPerformancesSuccessResponse struct {
	Data  ListPerformancesResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ListPerformances godoc
// @Summary List performances
// @Description Returns a page of performances ordered by start, optionally restricted to one event.
// @Tags performances
// @Produce json
// @Param event query string false "Event ID filter"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListPerformancesSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /performances [get]
func (c *PerformanceController) ListPerformances(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	perfs, total, err := c.Service.ListPerformances(r.Context(), r.URL.Query().Get("event"), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, performanceNotFound)
		return
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListPerformancesResponse{Items: perfs, Pagination: meta})
}

// GetPerformanceByID godoc
// @Summary Get a performance by ID
// @Tags performances
// @Produce json
// @Param performanceID path string true "Performance ID (UUID)"
// @Success 200 {object} controllers.PerformanceSuccessResponse "data contains the performance"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /performances/{performanceID} [get]
func (c *PerformanceController) GetPerformanceByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("performanceID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing performanceID")
		return
	}
	p, err := c.Service.GetPerformanceByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, performanceNotFound)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// PatchPerformance godoc
// @Summary Partially update a performance
// @Description Omitted fields keep their persisted values; the merged slot is validated against the target event, ignoring the performance's own current slot.
// @Tags performances
// @Accept json
// @Produce json
// @Param performanceID path string true "Performance ID (UUID)"
// @Param body body PatchPerformanceRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.PerformanceSuccessResponse "data contains the updated performance"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, invalid_range, out_of_event_bounds or overlap_conflict"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /performances/{performanceID} [patch]
func (c *PerformanceController) PatchPerformance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("performanceID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing performanceID")
		return
	}
	var req PatchPerformanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	c.update(w, r, id, domain.PerformancePatch{EventID: req.Event.Ptr(), Artists: req.Artists.Ptr(), Start: req.Start.Ptr(), End: req.End.Ptr()})
}

// ReplacePerformance godoc
// @Summary Replace a performance
// @Description Full update; every field is required.
// @Tags performances
// @Accept json
// @Produce json
// @Param performanceID path string true "Performance ID (UUID)"
// @Param body body PerformanceRequest true "Performance data"
// @Success 200 {object} controllers.PerformanceSuccessResponse "data contains the updated performance"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, invalid_range, out_of_event_bounds or overlap_conflict"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /performances/{performanceID} [put]
func (c *PerformanceController) ReplacePerformance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("performanceID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing performanceID")
		return
	}
	var req PerformanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	c.update(w, r, id, domain.PerformancePatch{EventID: &req.Event, Artists: &req.Artists, Start: req.Start, End: req.End})
}

func (c *PerformanceController) update(w http.ResponseWriter, r *http.Request, id string, patch domain.PerformancePatch) {
	p, err := c.Service.UpdatePerformance(r.Context(), id, patch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, performanceNotFound)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// DeletePerformance godoc
// @Summary Delete a performance
// @Description Removes the performance. Its event and artists are untouched.
// @Tags performances
// @Param performanceID path string true "Performance ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /performances/{performanceID} [delete]
func (c *PerformanceController) DeletePerformance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("performanceID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing performanceID")
		return
	}
	if err := c.Service.DeletePerformance(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, performanceNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
