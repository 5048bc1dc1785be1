package usecase

import (
	"context"

	"movie-tracker/internal/catalog"
	"movie-tracker/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Mock catalog client ---

type mockCatalogClient struct {
	mock.Mock
}

func (m *mockCatalogClient) Discover(ctx context.Context, filters catalog.Filters) ([]catalog.MovieSummary, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.MovieSummary), args.Error(1)
}

func (m *mockCatalogClient) Search(ctx context.Context, query string) ([]catalog.MovieSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.MovieSummary), args.Error(1)
}

func (m *mockCatalogClient) Details(ctx context.Context, id int64) (*catalog.MovieDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MovieDetail), args.Error(1)
}

func (m *mockCatalogClient) Recommendations(ctx context.Context, id int64) ([]catalog.MovieSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.MovieSummary), args.Error(1)
}

// --- Mock user repository ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock favorite repository ---

type mockFavoriteRepository struct {
	mock.Mock
}

func (m *mockFavoriteRepository) Add(ctx context.Context, userID uuid.UUID, movieID int64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, userID uuid.UUID, movieID int64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *mockFavoriteRepository) List(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// --- Mock review repository ---

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *mockReviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.ReviewWithAuthor, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ReviewWithAuthor), args.Error(1)
}

func (m *mockReviewRepository) FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int64) (*entity.Review, error) {
	args := m.Called(ctx, userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *mockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock watchlist repository ---

type mockWatchlistRepository struct {
	mock.Mock
}

func (m *mockWatchlistRepository) Create(ctx context.Context, watchlist *entity.Watchlist) error {
	args := m.Called(ctx, watchlist)
	return args.Error(0)
}

func (m *mockWatchlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Watchlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Watchlist), args.Error(1)
}

func (m *mockWatchlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Watchlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Watchlist), args.Error(1)
}

func (m *mockWatchlistRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *mockWatchlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockWatchlistRepository) AddMovie(ctx context.Context, id uuid.UUID, movieID int64) error {
	args := m.Called(ctx, id, movieID)
	return args.Error(0)
}

func (m *mockWatchlistRepository) RemoveMovie(ctx context.Context, id uuid.UUID, movieID int64) error {
	args := m.Called(ctx, id, movieID)
	return args.Error(0)
}
