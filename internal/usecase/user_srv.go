package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-tracker/internal/catalog"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/dto/response"
	"movie-tracker/pkg/apperrors"
	"movie-tracker/pkg/token"
	"movie-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)

	// UpdateProfile merges the provided fields and re-issues the credential.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.AuthResponse, error)

	AddFavorite(ctx context.Context, userID uuid.UUID, movieID int64) ([]int64, error)
	RemoveFavorite(ctx context.Context, userID uuid.UUID, movieID int64) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]catalog.MovieDetail, error)
}

type userService struct {
	repo    *repository.Repository
	catalog catalog.Client
	tokens  *token.Manager
	log     *zap.Logger
}

func NewUserService(repo *repository.Repository, catalogClient catalog.Client, tokens *token.Manager, log *zap.Logger) UserService {
	return &userService{
		repo:    repo,
		catalog: catalogClient,
		tokens:  tokens,
		log:     log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "User not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, apperrors.New(apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "User not found")
	}

	// Omitted fields keep their prior value
	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashed
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.New(apperrors.ErrDuplicate, "Email already in use")
		}
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("update user: %w", err)
	}

	signed, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", userID.String()))

	resp := response.AuthToResponse(user, signed)
	return &resp, nil
}

func (s *userService) AddFavorite(ctx context.Context, userID uuid.UUID, movieID int64) ([]int64, error) {
	if err := s.repo.Favorite.Add(ctx, userID, movieID); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.New(apperrors.ErrDuplicate, "Movie already in favorites")
		}
		s.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("add favorite: %w", err)
	}

	s.log.Info("Favorite added",
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", movieID))

	favorites, err := s.repo.Favorite.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if favorites == nil {
		favorites = []int64{}
	}

	return favorites, nil
}

func (s *userService) RemoveFavorite(ctx context.Context, userID uuid.UUID, movieID int64) error {
	// Removing an absent movie is a successful no-op
	if err := s.repo.Favorite.Remove(ctx, userID, movieID); err != nil {
		s.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("remove favorite: %w", err)
	}

	s.log.Info("Favorite removed",
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", movieID))

	return nil
}

func (s *userService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]catalog.MovieDetail, error) {
	movieIDs, err := s.repo.Favorite.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	details, err := resolveMovieDetails(ctx, s.catalog, movieIDs)
	if err != nil {
		s.log.Error("Failed to resolve favorite movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("resolve favorites: %w", err)
	}

	return details, nil
}
