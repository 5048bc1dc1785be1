package repository

import (
	"context"
	"fmt"
	"time"

	"movie-tracker/internal/data/entity"
	"movie-tracker/pkg/apperrors"
	"movie-tracker/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type WatchlistRepository interface {
	Create(ctx context.Context, watchlist *entity.Watchlist) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Watchlist, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Watchlist, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AddMovie fails with ErrDuplicate when the movie is already a member.
	AddMovie(ctx context.Context, id uuid.UUID, movieID int64) error

	// RemoveMovie is idempotent; removing an absent movie is a no-op.
	RemoveMovie(ctx context.Context, id uuid.UUID, movieID int64) error
}

type watchlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWatchlistRepository(db database.PgxIface, log *zap.Logger) WatchlistRepository {
	return &watchlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "watchlist")),
	}
}

func (r *watchlistRepository) Create(ctx context.Context, watchlist *entity.Watchlist) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create watchlist: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO watchlists (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = tx.Exec(ctx, query,
		watchlist.ID,
		watchlist.UserID,
		watchlist.Name,
		watchlist.CreatedAt,
		watchlist.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create watchlist",
			zap.Error(err),
			zap.String("user_id", watchlist.UserID.String()),
		)
		return fmt.Errorf("create watchlist for user %s: %w", watchlist.UserID.String(), err)
	}

	memberQuery := `
		INSERT INTO watchlist_movies (watchlist_id, movie_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (watchlist_id, movie_id) DO NOTHING
	`

	for i, movieID := range watchlist.Movies {
		// Spread timestamps so membership keeps insertion order.
		createdAt := watchlist.CreatedAt.Add(time.Duration(i) * time.Microsecond)
		if _, err := tx.Exec(ctx, memberQuery, watchlist.ID, movieID, createdAt); err != nil {
			return fmt.Errorf("add initial movie %d to watchlist %s: %w",
				movieID, watchlist.ID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create watchlist: %w", err)
	}

	return nil
}

func (r *watchlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Watchlist, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM watchlists
		WHERE id = $1
	`

	var watchlist entity.Watchlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&watchlist.ID,
		&watchlist.UserID,
		&watchlist.Name,
		&watchlist.CreatedAt,
		&watchlist.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find watchlist by ID",
			zap.Error(err),
			zap.String("watchlist_id", id.String()),
		)
		return nil, fmt.Errorf("find watchlist by ID %s: %w", id.String(), err)
	}

	movies, err := r.listMovies(ctx, id)
	if err != nil {
		return nil, err
	}
	watchlist.Movies = movies

	return &watchlist, nil
}

func (r *watchlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Watchlist, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM watchlists
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find watchlists by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find watchlists for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var watchlists []*entity.Watchlist
	for rows.Next() {
		var watchlist entity.Watchlist
		err := rows.Scan(
			&watchlist.ID,
			&watchlist.UserID,
			&watchlist.Name,
			&watchlist.CreatedAt,
			&watchlist.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan watchlist row", zap.Error(err))
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		watchlists = append(watchlists, &watchlist)
	}
	rows.Close()

	for _, watchlist := range watchlists {
		movies, err := r.listMovies(ctx, watchlist.ID)
		if err != nil {
			return nil, err
		}
		watchlist.Movies = movies
	}

	return watchlists, nil
}

func (r *watchlistRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	query := `
		UPDATE watchlists
		SET name = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, name, time.Now())
	if err != nil {
		r.log.Error("Failed to rename watchlist",
			zap.Error(err),
			zap.String("watchlist_id", id.String()),
		)
		return fmt.Errorf("rename watchlist %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rename watchlist %s: %w", id.String(), apperrors.ErrNotFound)
	}

	return nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete watchlist: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM watchlist_movies WHERE watchlist_id = $1`, id); err != nil {
		return fmt.Errorf("delete watchlist %s movies: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM watchlists WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete watchlist",
			zap.Error(err),
			zap.String("watchlist_id", id.String()),
		)
		return fmt.Errorf("delete watchlist %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete watchlist %s: %w", id.String(), apperrors.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete watchlist: %w", err)
	}

	return nil
}

func (r *watchlistRepository) AddMovie(ctx context.Context, id uuid.UUID, movieID int64) error {
	query := `
		INSERT INTO watchlist_movies (watchlist_id, movie_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (watchlist_id, movie_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, id, movieID, time.Now())
	if err != nil {
		r.log.Error("Failed to add movie to watchlist",
			zap.Error(err),
			zap.String("watchlist_id", id.String()),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("add movie %d to watchlist %s: %w", movieID, id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("add movie %d to watchlist %s: %w", movieID, id.String(), apperrors.ErrDuplicate)
	}

	return nil
}

func (r *watchlistRepository) RemoveMovie(ctx context.Context, id uuid.UUID, movieID int64) error {
	query := `DELETE FROM watchlist_movies WHERE watchlist_id = $1 AND movie_id = $2`

	_, err := r.db.Exec(ctx, query, id, movieID)
	if err != nil {
		r.log.Error("Failed to remove movie from watchlist",
			zap.Error(err),
			zap.String("watchlist_id", id.String()),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("remove movie %d from watchlist %s: %w", movieID, id.String(), err)
	}

	return nil
}

func (r *watchlistRepository) listMovies(ctx context.Context, id uuid.UUID) ([]int64, error) {
	query := `
		SELECT movie_id
		FROM watchlist_movies
		WHERE watchlist_id = $1
		ORDER BY created_at, movie_id
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list movies for watchlist %s: %w", id.String(), err)
	}
	defer rows.Close()

	var movieIDs []int64
	for rows.Next() {
		var movieID int64
		if err := rows.Scan(&movieID); err != nil {
			return nil, fmt.Errorf("scan watchlist movie row: %w", err)
		}
		movieIDs = append(movieIDs, movieID)
	}

	return movieIDs, nil
}
