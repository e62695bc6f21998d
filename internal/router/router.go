package router

import (
	"net/http"

	"pet-health/docs"
	"pet-health/internal/domain/healthlog"
	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/sensors"
	"pet-health/internal/domain/store"
	"pet-health/internal/middleware"
	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/metrics"
	"pet-health/internal/transport/ws"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Store     *store.Store
	Pets      *pets.Service
	HealthLog *healthlog.Service
	Tracker   *sensors.Tracker

	// Opcionales.
	Metrics  *metrics.Metrics
	Logger   logger.Logger
	APIToken string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.APIToken(opts.APIToken, "/health"))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))

	r.Method(http.MethodGet, "/ws", ws.NewServer(opts.HealthLog, opts.Store.Bus(), log))

	// Rutas por módulo
	pets.RegisterRoutes(r, opts.Pets)
	healthlog.RegisterRoutes(r, opts.HealthLog)
	sensors.RegisterRoutes(r, opts.Tracker)

	return r
}
