package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gatherhall/server/internal/api/handlers"
	"github.com/gatherhall/server/internal/api/middleware"
	"github.com/gatherhall/server/internal/domain/attendees"
	"github.com/gatherhall/server/internal/domain/events"
	"github.com/gatherhall/server/internal/domain/organizers"
	"github.com/gatherhall/server/internal/domain/reports"
	"github.com/gatherhall/server/internal/metrics"
	"github.com/gatherhall/server/internal/storage"
	"github.com/gatherhall/server/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter wires handlers to routes. The repository is constructed by the
// caller and injected; no package-level store handle exists.
func NewRouter(repo storage.Repository, logger zerolog.Logger) http.Handler {
	eventsService := events.NewService(repo.Events())
	attendeesService := attendees.NewService(repo.Attendees(), repo.Events())
	organizersService := organizers.NewService(repo.Organizers())
	reportsService := reports.NewService(repo.Reports())

	eventsHandler := handlers.NewEventsHandler(eventsService)
	attendeesHandler := handlers.NewAttendeesHandler(attendeesService)
	organizersHandler := handlers.NewOrganizersHandler(organizersService)
	reportsHandler := handlers.NewReportsHandler(reportsService)

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz())
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.Handle("/api/openapi.json", OpenAPIHandler())
	mux.Handle("/api-docs", web.APIDocsHandler())
	mux.Handle("/api-docs/", web.APIDocsHandler())

	mux.Handle("/api/events", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(eventsHandler.List),
		http.MethodPost: http.HandlerFunc(eventsHandler.Create),
	}))
	mux.Handle("/api/events/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(eventsHandler.Get),
		http.MethodPut:    http.HandlerFunc(eventsHandler.Update),
		http.MethodPatch:  http.HandlerFunc(eventsHandler.Update),
		http.MethodDelete: http.HandlerFunc(eventsHandler.Delete),
	}))

	mux.Handle("/api/attendees", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(attendeesHandler.List),
		http.MethodPost: http.HandlerFunc(attendeesHandler.Create),
	}))
	mux.Handle("/api/attendees/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(attendeesHandler.Get),
		http.MethodDelete: http.HandlerFunc(attendeesHandler.Delete),
	}))

	mux.Handle("/api/organizers", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(organizersHandler.List),
		http.MethodPost: http.HandlerFunc(organizersHandler.Create),
	}))
	mux.Handle("/api/organizers/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(organizersHandler.Get),
		http.MethodPut:    http.HandlerFunc(organizersHandler.Update),
		http.MethodDelete: http.HandlerFunc(organizersHandler.Delete),
	}))

	mux.Handle("/api/reports/event-stats", methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(reportsHandler.EventStats),
	}))

	var handler http.Handler = mux
	handler = metrics.InstrumentHandler(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
