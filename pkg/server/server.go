package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/work-pulse/pkg/handlers/dashboard"

	workpulsemiddleware "github.com/de-tools/work-pulse/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Dashboard handlers.Controller
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the dashboard API. The CORS policy is permissive on
// purpose: the server binds to localhost and serves a browser frontend
// running on another local port.
func ConfigureRouter(logger *zerolog.Logger, config Config) *chi.Mux {
	dashboardHandler := handlers.NewHandler(config.Dependencies.Dashboard)

	router := chi.NewRouter()

	router.Use(workpulsemiddleware.Logger(logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/session", dashboardHandler.Login)
		r.Get("/session", dashboardHandler.GetSession)
		r.Delete("/session", dashboardHandler.SignOut)

		r.Post("/sync", dashboardHandler.Sync)
		r.Get("/stats", dashboardHandler.GetStats)
		r.Put("/logged-hours", dashboardHandler.PutLoggedHours)

		r.Get("/calendar", dashboardHandler.GetCalendar)
		r.Put("/calendar/config", dashboardHandler.PutCalendarConfig)

		r.Get("/compensation", dashboardHandler.GetCompensation)
		r.Put("/compensation/config", dashboardHandler.PutCompensationConfig)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(&logger, config)

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
