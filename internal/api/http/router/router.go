package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/krylovda/relayboard-server/internal/api/http/handler"
	"github.com/krylovda/relayboard-server/internal/api/http/middleware"
	"github.com/krylovda/relayboard-server/internal/logger"
	"github.com/krylovda/relayboard-server/internal/model"
	"github.com/krylovda/relayboard-server/internal/service"
)

// Router wires the session endpoints, middleware and operational routes.
type Router struct {
	sessionService *service.Session
	contextManager model.ContextManager
	registry       *prometheus.Registry
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	sessionService *service.Session,
	contextManager model.ContextManager,
	registry *prometheus.Registry,
	logger *logger.Logger,
) *Router {
	return &Router{
		sessionService: sessionService,
		contextManager: contextManager,
		registry:       registry,
		logger:         logger,
	}
}

// Register builds the handler chain. Refresh and logout are reachable without
// an access token; introspection sits behind the authentication middleware.
func (r *Router) Register() http.Handler {
	sessionHandler := handler.NewSession(r.sessionService, r.contextManager, r.logger)
	authenticate := middleware.NewAuthenticate(r.sessionService, r.contextManager, r.logger)
	logging := middleware.NewLogging(r.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/session/refresh", sessionHandler.Refresh)
	mux.HandleFunc("POST /api/session/logout", sessionHandler.Logout)
	mux.Handle("GET /api/session", authenticate.Handle(http.HandlerFunc(sessionHandler.Introspect)))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))

	return logging.Handle(mux)
}
