package http

import (
	"net/http"

	"eventlineup/internal/delivery/http/controllers"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Events       *controllers.EventController
	Performances *controllers.PerformanceController
	Artists      *controllers.ArtistController
	Health       *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// gatherer serves /metrics; nil disables the endpoint.
func NewRouter(c Controllers, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", c.Events.CreateEvent)
	mux.HandleFunc("GET /events", c.Events.ListEvents)
	mux.HandleFunc("POST /events/generate-csv", c.Events.GenerateCSV)
	mux.HandleFunc("GET /events/{eventID}", c.Events.GetEventByID)
	mux.HandleFunc("PATCH /events/{eventID}", c.Events.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", c.Events.DeleteEvent)

	// Performances
	mux.HandleFunc("POST /performances", c.Performances.CreatePerformance)
	mux.HandleFunc("GET /performances", c.Performances.ListPerformances)
	mux.HandleFunc("GET /performances/{performanceID}", c.Performances.GetPerformanceByID)
	mux.HandleFunc("PATCH /performances/{performanceID}", c.Performances.PatchPerformance)
	mux.HandleFunc("PUT /performances/{performanceID}", c.Performances.ReplacePerformance)
	mux.HandleFunc("DELETE /performances/{performanceID}", c.Performances.DeletePerformance)

	// Artists
	mux.HandleFunc("POST /artists", c.Artists.CreateArtist)
	mux.HandleFunc("GET /artists", c.Artists.ListArtists)
	mux.HandleFunc("GET /artists/{artistID}", c.Artists.GetArtistByID)
	mux.HandleFunc("DELETE /artists/{artistID}", c.Artists.DeleteArtist)

	// Operations
	mux.HandleFunc("GET /health", c.Health.Health)
	if gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
