package usecase

import (
	"context"

	"movie-tracker/internal/catalog"
	"movie-tracker/internal/data/repository"
	"movie-tracker/pkg/token"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Movie     MovieService
	Review    ReviewService
	Watchlist WatchlistService
}

func NewService(repo *repository.Repository, catalogClient catalog.Client, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, tokens, log),
		User:      NewUserService(repo, catalogClient, tokens, log),
		Movie:     NewMovieService(catalogClient, repo.Favorite, log),
		Review:    NewReviewService(repo.Review, log),
		Watchlist: NewWatchlistService(repo.Watchlist, catalogClient, log),
	}
}

// resolveMovieDetails fetches the detail for every id concurrently. The
// result keeps the order of the stored ids, not completion order, and any
// single failure fails the whole aggregate.
func resolveMovieDetails(ctx context.Context, client catalog.Client, movieIDs []int64) ([]catalog.MovieDetail, error) {
	details := make([]catalog.MovieDetail, len(movieIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, movieID := range movieIDs {
		g.Go(func() error {
			detail, err := client.Details(gctx, movieID)
			if err != nil {
				return err
			}
			details[i] = *detail
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}
