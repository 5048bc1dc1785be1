package wire

import (
	"movie-tracker/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures the public registration and login routes.
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/api/users/register", authHandler.Register)
	r.Post("/api/users/login", authHandler.Login)
}
