package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-tracker/internal/catalog"
	"movie-tracker/internal/data/entity"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/dto/response"
	"movie-tracker/pkg/apperrors"
	"movie-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WatchlistService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateWatchlistRequest) (*response.WatchlistResponse, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]response.WatchlistResponse, error)
	Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*response.WatchlistResponse, error)
	Rename(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *request.RenameWatchlistRequest) (*response.WatchlistResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	AddMovie(ctx context.Context, userID uuid.UUID, id uuid.UUID, movieID int64) (*response.WatchlistResponse, error)
	RemoveMovie(ctx context.Context, userID uuid.UUID, id uuid.UUID, movieID int64) (*response.WatchlistResponse, error)

	// ResolveMovies returns the full catalog detail for every movie in the
	// list, in list order.
	ResolveMovies(ctx context.Context, userID uuid.UUID, id uuid.UUID) ([]catalog.MovieDetail, error)
}

type watchlistService struct {
	watchlists repository.WatchlistRepository
	catalog    catalog.Client
	log        *zap.Logger
}

func NewWatchlistService(watchlists repository.WatchlistRepository, catalogClient catalog.Client, log *zap.Logger) WatchlistService {
	return &watchlistService{
		watchlists: watchlists,
		catalog:    catalogClient,
		log:        log.With(zap.String("service", "watchlist")),
	}
}

func (s *watchlistService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateWatchlistRequest) (*response.WatchlistResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create watchlist validation failed", zap.Any("errors", errs))
		return nil, apperrors.New(apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "Please provide a name for the watchlist")
	}

	now := time.Now()
	watchlist := &entity.Watchlist{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
		Name:   name,
		Movies: dedupeMovies(req.Movies),
	}

	if err := s.watchlists.Create(ctx, watchlist); err != nil {
		s.log.Error("Failed to create watchlist",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("create watchlist: %w", err)
	}

	s.log.Info("Watchlist created",
		zap.String("watchlist_id", watchlist.ID.String()),
		zap.String("user_id", userID.String()))

	resp := response.WatchlistToResponse(watchlist)
	return &resp, nil
}

func (s *watchlistService) ListAll(ctx context.Context, userID uuid.UUID) ([]response.WatchlistResponse, error) {
	watchlists, err := s.watchlists.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list watchlists: %w", err)
	}

	resp := make([]response.WatchlistResponse, 0, len(watchlists))
	for _, watchlist := range watchlists {
		resp = append(resp, response.WatchlistToResponse(watchlist))
	}

	return resp, nil
}

func (s *watchlistService) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*response.WatchlistResponse, error) {
	watchlist, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	resp := response.WatchlistToResponse(watchlist)
	return &resp, nil
}

func (s *watchlistService) Rename(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *request.RenameWatchlistRequest) (*response.WatchlistResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Rename watchlist validation failed", zap.Any("errors", errs))
		return nil, apperrors.New(apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	watchlist, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// An empty name keeps the current one
	name := strings.TrimSpace(req.Name)
	if name != "" && name != watchlist.Name {
		if err := s.watchlists.UpdateName(ctx, id, name); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.New(apperrors.ErrNotFound, "Watchlist not found")
			}
			s.log.Error("Failed to rename watchlist",
				zap.Error(err),
				zap.String("watchlist_id", id.String()),
			)
			return nil, fmt.Errorf("rename watchlist: %w", err)
		}
		watchlist.Name = name
		watchlist.UpdatedAt = time.Now()
	}

	s.log.Info("Watchlist renamed",
		zap.String("watchlist_id", id.String()),
		zap.String("user_id", userID.String()))

	resp := response.WatchlistToResponse(watchlist)
	return &resp, nil
}

func (s *watchlistService) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if _, err := s.loadOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.watchlists.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.New(apperrors.ErrNotFound, "Watchlist not found")
		}
		s.log.Error("Failed to delete watchlist",
			zap.Error(err),
			zap.String("watchlist_id", id.String()),
		)
		return fmt.Errorf("delete watchlist: %w", err)
	}

	s.log.Info("Watchlist deleted",
		zap.String("watchlist_id", id.String()),
		zap.String("user_id", userID.String()))

	return nil
}

func (s *watchlistService) AddMovie(ctx context.Context, userID uuid.UUID, id uuid.UUID, movieID int64) (*response.WatchlistResponse, error) {
	if _, err := s.loadOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := s.watchlists.AddMovie(ctx, id, movieID); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.New(apperrors.ErrDuplicate, "Movie already in watchlist")
		}
		s.log.Error("Failed to add movie to watchlist",
			zap.Error(err),
			zap.String("watchlist_id", id.String()),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("add movie to watchlist: %w", err)
	}

	s.log.Info("Movie added to watchlist",
		zap.String("watchlist_id", id.String()),
		zap.Int64("movie_id", movieID))

	return s.Get(ctx, userID, id)
}

func (s *watchlistService) RemoveMovie(ctx context.Context, userID uuid.UUID, id uuid.UUID, movieID int64) (*response.WatchlistResponse, error) {
	if _, err := s.loadOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	// Removing an absent movie is a successful no-op
	if err := s.watchlists.RemoveMovie(ctx, id, movieID); err != nil {
		s.log.Error("Failed to remove movie from watchlist",
			zap.Error(err),
			zap.String("watchlist_id", id.String()),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("remove movie from watchlist: %w", err)
	}

	s.log.Info("Movie removed from watchlist",
		zap.String("watchlist_id", id.String()),
		zap.Int64("movie_id", movieID))

	return s.Get(ctx, userID, id)
}

func (s *watchlistService) ResolveMovies(ctx context.Context, userID uuid.UUID, id uuid.UUID) ([]catalog.MovieDetail, error) {
	watchlist, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	details, err := resolveMovieDetails(ctx, s.catalog, watchlist.Movies)
	if err != nil {
		s.log.Error("Failed to resolve watchlist movies",
			zap.Error(err),
			zap.String("watchlist_id", id.String()),
		)
		return nil, fmt.Errorf("resolve watchlist movies: %w", err)
	}

	return details, nil
}

// loadOwned answers "not found" for both a missing watchlist and one owned by
// someone else, so callers cannot probe for other users' list IDs.
func (s *watchlistService) loadOwned(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*entity.Watchlist, error) {
	watchlist, err := s.watchlists.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find watchlist: %w", err)
	}
	if watchlist == nil || watchlist.UserID != userID {
		return nil, apperrors.New(apperrors.ErrNotFound, "Watchlist not found")
	}

	return watchlist, nil
}

func dedupeMovies(movieIDs []int64) []int64 {
	seen := make(map[int64]struct{}, len(movieIDs))
	deduped := make([]int64, 0, len(movieIDs))
	for _, movieID := range movieIDs {
		if _, ok := seen[movieID]; ok {
			continue
		}
		seen[movieID] = struct{}{}
		deduped = append(deduped, movieID)
	}

	return deduped
}
