package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/reviewlens/reviewlens/internal"
	"github.com/reviewlens/reviewlens/pkg/auth"
	"github.com/reviewlens/reviewlens/pkg/models"
	"github.com/reviewlens/reviewlens/pkg/session"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var log = internal.GetLogger()

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState, session.NewManager(appState))
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", appState.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState, manager *session.Manager) *chi.Mux {
	maxRequestSize := appState.Config.Server.MaxRequestSize
	if maxRequestSize == 0 {
		maxRequestSize = 1 << 20
	}

	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.RequestSize(maxRequestSize))
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))

	if appState.Config.Auth.Required {
		log.Info("JWT authentication required")
		tokenAuth := auth.TokenAuth(appState.Config)
		router.Use(jwtauth.Verifier(tokenAuth))
		router.Use(jwtauth.Authenticator(tokenAuth))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", PostChatHandler(manager))
		r.Route("/sessions/{sessionId}", func(r chi.Router) {
			r.Get("/", GetSessionHandler(manager))
			r.Delete("/", DeleteSessionHandler(manager))
		})
	})

	return router
}
