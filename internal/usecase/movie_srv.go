package usecase

import (
	"context"
	"fmt"

	"movie-tracker/internal/catalog"
	"movie-tracker/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	Discover(ctx context.Context, filters catalog.Filters) ([]catalog.MovieSummary, error)
	Search(ctx context.Context, query string) ([]catalog.MovieSummary, error)
	Details(ctx context.Context, movieID int64) (*catalog.MovieDetail, error)

	// Recommendations implements the personalized -> popular fallback chain.
	Recommendations(ctx context.Context, userID uuid.UUID) ([]catalog.MovieSummary, error)
}

type movieService struct {
	catalog   catalog.Client
	favorites repository.FavoriteRepository
	log       *zap.Logger
}

func NewMovieService(catalogClient catalog.Client, favorites repository.FavoriteRepository, log *zap.Logger) MovieService {
	return &movieService{
		catalog:   catalogClient,
		favorites: favorites,
		log:       log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) Discover(ctx context.Context, filters catalog.Filters) ([]catalog.MovieSummary, error) {
	movies, err := s.catalog.Discover(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("discover movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) Search(ctx context.Context, query string) ([]catalog.MovieSummary, error) {
	movies, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) Details(ctx context.Context, movieID int64) (*catalog.MovieDetail, error) {
	detail, err := s.catalog.Details(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("movie details %d: %w", movieID, err)
	}
	return detail, nil
}

func (s *movieService) Recommendations(ctx context.Context, userID uuid.UUID) ([]catalog.MovieSummary, error) {
	favorites, err := s.favorites.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	// Without favorites there is nothing to personalize on
	if len(favorites) == 0 {
		return s.popular(ctx)
	}

	lastFavorite := favorites[len(favorites)-1]

	recommendations, err := s.catalog.Recommendations(ctx, lastFavorite)
	if err != nil {
		return nil, fmt.Errorf("recommendations for movie %d: %w", lastFavorite, err)
	}

	if len(recommendations) == 0 {
		s.log.Debug("No recommendations for favorite, falling back to popular",
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", lastFavorite))
		return s.popular(ctx)
	}

	return recommendations, nil
}

func (s *movieService) popular(ctx context.Context) ([]catalog.MovieSummary, error) {
	movies, err := s.catalog.Discover(ctx, catalog.Filters{SortBy: catalog.DefaultSort})
	if err != nil {
		return nil, fmt.Errorf("popular movies: %w", err)
	}
	return movies, nil
}
