package wire

import (
	"movie-tracker/internal/adaptor"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireWatchlist configures the watchlist routes. All of them are scoped to
// the authenticated owner.
func wireWatchlist(r chi.Router, watchlistHandler *adaptor.WatchlistHandler, tokens *token.Manager, log *zap.Logger) {
	protect := middleware.Auth(tokens, log)

	r.With(protect).Route("/api/watchlists", func(r chi.Router) {
		r.Get("/", watchlistHandler.ListAll)
		r.Post("/", watchlistHandler.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", watchlistHandler.Get)
			r.Put("/", watchlistHandler.Rename)
			r.Delete("/", watchlistHandler.Delete)

			r.Get("/movies", watchlistHandler.ResolveMovies)
			r.Post("/movies", watchlistHandler.AddMovie)
			r.Delete("/movies/{movieId}", watchlistHandler.RemoveMovie)
		})
	})
}
