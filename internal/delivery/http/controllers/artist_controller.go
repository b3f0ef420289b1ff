package controllers

import (
	"log/slog"
	"net/http"

	"eventlineup/internal/delivery/http/helpers"
	"eventlineup/internal/domain"
)

// CreateArtistRequest is the request body for POST /artists.
type CreateArtistRequest struct {
	Name       string `json:"name"`
	MusicGenre string `json:"music_genre"`
}

// Validate implements Validator. Genre values are checked by the service.
func (c CreateArtistRequest) Validate() map[string]string {
	errs := map[string]string{}
	if c.Name == "" {
		errs["name"] = msgRequired
	}
	if c.MusicGenre == "" {
		errs["music_genre"] = msgRequired
	}
	return errs
}

// ArtistSuccessResponse is the success response envelope for endpoints returning one artist.
type ArtistSuccessResponse struct {
	Data  *domain.Artist    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListArtistsResponse is the data payload for GET /artists (200).
type ListArtistsResponse struct {
	Items      []*domain.Artist       `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListArtistsSuccessResponse is the success response envelope for GET /artists (200).
type ListArtistsSuccessResponse struct {
	Data  ListArtistsResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type ArtistController struct {
	Logger  *slog.Logger
	Service domain.ArtistService
}

func NewArtistController(logger *slog.Logger, svc domain.ArtistService) *ArtistController {
	return &ArtistController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateArtist godoc
// @Summary Create an artist
// @Description music_genre is one of rock, pop, hip_hop, country. Names are unique.
// @Tags artists
// @Accept json
// @Produce json
// @Param body body CreateArtistRequest true "Artist data"
// @Success 201 {object} controllers.ArtistSuccessResponse "data contains the created artist"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists [post]
func (c *ArtistController) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var req CreateArtistRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	artist := &domain.Artist{Name: req.Name, Genre: domain.Genre(req.MusicGenre)}
	if err := c.Service.CreateArtist(r.Context(), artist); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, artist)
}

// ListArtists godoc
// @Summary List artists
// @Tags artists
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListArtistsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists [get]
func (c *ArtistController) ListArtists(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	artists, total, err := c.Service.ListArtists(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListArtistsResponse{Items: artists, Pagination: meta})
}

// GetArtistByID godoc
// @Summary Get an artist by ID
// @Tags artists
// @Produce json
// @Param artistID path string true "Artist ID (UUID)"
// @Success 200 {object} controllers.ArtistSuccessResponse "data contains the artist"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/{artistID} [get]
func (c *ArtistController) GetArtistByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("artistID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing artistID")
		return
	}
	artist, err := c.Service.GetArtistByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, artist)
}

// DeleteArtist godoc
// @Summary Delete an artist
// @Description Removes the artist from every performance; the performances remain.
// @Tags artists
// @Param artistID path string true "Artist ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/{artistID} [delete]
func (c *ArtistController) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("artistID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing artistID")
		return
	}
	if err := c.Service.DeleteArtist(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
