package repository

import (
	"movie-tracker/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Favorite  FavoriteRepository
	Review    ReviewRepository
	Watchlist WatchlistRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Favorite:  NewFavoriteRepository(db, log),
		Review:    NewReviewRepository(db, log),
		Watchlist: NewWatchlistRepository(db, log),
	}
}
