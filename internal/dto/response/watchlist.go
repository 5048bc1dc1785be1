package response

import (
	"time"

	"movie-tracker/internal/data/entity"
)

type WatchlistResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Movies    []int64   `json:"movies"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Helper converter
func WatchlistToResponse(watchlist *entity.Watchlist) WatchlistResponse {
	movies := watchlist.Movies
	if movies == nil {
		movies = []int64{}
	}

	return WatchlistResponse{
		ID:        watchlist.ID.String(),
		UserID:    watchlist.UserID.String(),
		Name:      watchlist.Name,
		Movies:    movies,
		CreatedAt: watchlist.CreatedAt,
		UpdatedAt: watchlist.UpdatedAt,
	}
}
