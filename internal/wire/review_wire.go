package wire

import (
	"movie-tracker/internal/adaptor"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireReview configures the routes addressing a review by its own id.
func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, tokens *token.Manager, log *zap.Logger) {
	protect := middleware.Auth(tokens, log)

	r.With(protect).Route("/api/reviews", func(r chi.Router) {
		r.Put("/{id}", reviewHandler.Update)
		r.Delete("/{id}", reviewHandler.Delete)
	})
}
