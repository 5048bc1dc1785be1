package wire

import (
	"net/http"

	"movie-tracker/internal/adaptor"
	"movie-tracker/internal/catalog"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/usecase"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/token"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles services, handlers and the router.
func Wiring(repo *repository.Repository, catalogClient catalog.Client, tokens *token.Manager, logger *zap.Logger) *App {
	service := usecase.NewService(repo, catalogClient, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, tokens *token.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, tokens, logger)
	wireMovie(r, handler.Movie, handler.Review, tokens, logger)
	wireReview(r, handler.Review, tokens, logger)
	wireWatchlist(r, handler.Watchlist, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
