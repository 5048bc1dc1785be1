package wire

import (
	"movie-tracker/internal/adaptor"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures profile and favorites routes. Everything here requires
// a valid bearer token.
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, tokens *token.Manager, log *zap.Logger) {
	protect := middleware.Auth(tokens, log)

	r.With(protect).Route("/api/users", func(r chi.Router) {
		r.Get("/profile", userHandler.GetProfile)
		r.Put("/profile", userHandler.UpdateProfile)

		r.Get("/favorites", userHandler.ListFavorites)
		r.Post("/favorites", userHandler.AddFavorite)
		r.Delete("/favorites/{movieId}", userHandler.RemoveFavorite)
	})
}
