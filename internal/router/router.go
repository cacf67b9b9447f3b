package router

import (
	"database/sql"
	"net/http"

	_ "edd-calculator/docs"
	mem "edd-calculator/internal/adapters/storage/memory"
	pg "edd-calculator/internal/adapters/storage/postgres"
	"edd-calculator/internal/domain/calculations"
	"edd-calculator/internal/middleware"
	"edd-calculator/internal/platform/logger"
	"edd-calculator/internal/ports/auth"
	"edd-calculator/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.Verifier // nil = modo dev (X-Debug-User-ID)
	Logger       logger.Logger

	// Opcional: si viene, el historial va a Postgres. Si no, in-memory.
	DB *sql.DB

	HistoryLimit int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var repo calculations.Repository
	if opts.DB != nil {
		repo = pg.NewCalculationsRepo(opts.DB)
	} else {
		repo = mem.NewCalculationsRepo()
	}

	svc := calculations.NewService(repo, calculations.Options{
		Logger:       log,
		HistoryLimit: opts.HistoryLimit,
	})

	calculations.RegisterRoutes(r, svc)
	web.RegisterRoutes(r, web.NewHandler(svc, log))

	return r
}
