package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventlineup/internal/delivery/http/helpers"
	"eventlineup/internal/domain"
)

const (
	msgRequired = "This field is required."
	msgNotNull  = "This field may not be null."
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name  string     `json:"name"`
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() map[string]string {
	errs := map[string]string{}
	if c.Name == "" {
		errs["name"] = msgRequired
	}
	if c.Start == nil {
		errs["start"] = msgRequired
	}
	if c.End == nil {
		errs["end"] = msgRequired
	}
	return errs
}

// EventSuccessResponse is the success response envelope for endpoints returning one event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Exports domain.ExportService
}

func NewEventController(logger *slog.Logger, svc domain.EventService, exports domain.ExportService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Exports: exports,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates a named event window. The end may equal but not precede the start. Names are unique.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, invalid_range or conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := domain.NewEvent(req.Name, *req.Start, *req.End, time.Time{}, time.Time{})
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEventsResponse is the data payload for GET /events (200).
type ListEventsResponse struct {
	Items      []*domain.Event        `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListEvents godoc
// @Summary List events
// @Description Returns a page of events ordered by start.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{Items: events, Pagination: meta})
}

// EventDetail is an event together with its performances ordered by start.
type EventDetail struct {
	*domain.Event
	Performances []*domain.Performance `json:"performances"`
}

// GetEventByIDSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventByIDSuccessResponse struct {
	Data  EventDetail       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Description Returns the event and its performances ordered by start.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.GetEventByIDSuccessResponse "data contains the event and its performances"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, performances, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventDetail{Event: event, Performances: performances})
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}. Omitted fields are unchanged.
// Explicit nulls are rejected.
type UpdateEventRequest struct {
	Name  helpers.Optional[string]    `json:"name" swaggertype:"string"`
	Start helpers.Optional[time.Time] `json:"start" swaggertype:"string" format:"date-time"`
	End   helpers.Optional[time.Time] `json:"end" swaggertype:"string" format:"date-time"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() map[string]string {
	return helpers.NullFields(nil, msgNotNull, map[string]bool{
		"name":  u.Name.Null,
		"start": u.Start.Null,
		"end":   u.End.Null,
	})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partially updates an event. A changed window is checked against the event's performances; every performance must still fit.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, invalid_range, children_out_of_bounds or conflict"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, domain.EventPatch{Name: req.Name.Ptr(), Start: req.Start.Ptr(), End: req.End.Ptr()})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and all of its performances.
// @Tags events
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateCSVRequest is the request body for POST /events/generate-csv.
type GenerateCSVRequest struct {
	WebhookURL string `json:"webhook_url"`
}

// Validate implements Validator.
func (g GenerateCSVRequest) Validate() map[string]string {
	if g.WebhookURL == "" {
		return map[string]string{"webhook_url": msgRequired}
	}
	return nil
}

// GenerateCSVResponse is the data payload for POST /events/generate-csv (200).
type GenerateCSVResponse struct {
	Status string `json:"status"`
	JobID  string `json:"job_id"`
}

// GenerateCSVSuccessResponse is the success response envelope for POST /events/generate-csv (200).
type GenerateCSVSuccessResponse struct {
	Data  GenerateCSVResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// GenerateCSV godoc
// @Summary Export events as CSV
// @Description Queues a CSV export of all events and returns at once. When the file is ready its URL and checksum are POSTed to webhook_url. Delivery is best-effort.
// @Tags events
// @Accept json
// @Produce json
// @Param body body GenerateCSVRequest true "Webhook destination"
// @Success 200 {object} controllers.GenerateCSVSuccessResponse "data contains the job id"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/generate-csv [post]
func (c *EventController) GenerateCSV(w http.ResponseWriter, r *http.Request) {
	var req GenerateCSVRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	jobID, err := c.Exports.InitiateEventExport(r.Context(), req.WebhookURL)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GenerateCSVResponse{Status: "CSV export process initiated.", JobID: jobID})
}
