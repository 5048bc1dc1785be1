package wire

import (
	"movie-tracker/internal/adaptor"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireMovie configures the catalog proxy routes and the per-movie review
// routes that hang off the movie path.
func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	reviewHandler *adaptor.ReviewHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	protect := middleware.Auth(tokens, log)

	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.Discover)
		r.Get("/search", movieHandler.Search)
		r.With(protect).Get("/recommendations", movieHandler.Recommendations)
		r.Get("/{id}", movieHandler.Details)

		r.Route("/{movieId}/reviews", func(r chi.Router) {
			r.Get("/", reviewHandler.ListByMovie)
			r.With(protect).Post("/", reviewHandler.Create)
			r.With(protect).Get("/user", reviewHandler.GetOwn)
		})
	})
}
