package repository

import (
	"context"
	"fmt"
	"time"

	"movie-tracker/pkg/apperrors"
	"movie-tracker/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FavoriteRepository interface {
	// Add appends movieID to the user's favorites. Fails with ErrDuplicate
	// when the movie is already present.
	Add(ctx context.Context, userID uuid.UUID, movieID int64) error

	// Remove is idempotent; removing an absent movie succeeds as a no-op.
	Remove(ctx context.Context, userID uuid.UUID, movieID int64) error

	// List returns the user's favorite movie ids in insertion order.
	List(ctx context.Context, userID uuid.UUID) ([]int64, error)
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

func (r *favoriteRepository) Add(ctx context.Context, userID uuid.UUID, movieID int64) error {
	// Conditional insert keeps the duplicate check atomic under concurrent
	// requests for the same user.
	query := `
		INSERT INTO favorites (user_id, movie_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, userID, movieID, time.Now())
	if err != nil {
		r.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("add favorite %d for user %s: %w", movieID, userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("add favorite %d for user %s: %w", movieID, userID.String(), apperrors.ErrDuplicate)
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID uuid.UUID, movieID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2`

	_, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("remove favorite %d for user %s: %w", movieID, userID.String(), err)
	}

	return nil
}

func (r *favoriteRepository) List(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	query := `
		SELECT movie_id
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at, movie_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list favorites",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list favorites for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var movieIDs []int64
	for rows.Next() {
		var movieID int64
		if err := rows.Scan(&movieID); err != nil {
			r.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		movieIDs = append(movieIDs, movieID)
	}

	return movieIDs, nil
}
