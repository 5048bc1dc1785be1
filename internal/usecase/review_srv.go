package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-tracker/internal/data/entity"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/dto/response"
	"movie-tracker/pkg/apperrors"
	"movie-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// Create adds the caller's review for a movie. Each user gets at most one
	// review per movie.
	Create(ctx context.Context, userID uuid.UUID, movieID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListByMovie(ctx context.Context, movieID int64) ([]response.ReviewResponse, error)

	// GetOwn returns nil without error when the caller has not reviewed the
	// movie yet.
	GetOwn(ctx context.Context, userID uuid.UUID, movieID int64) (*response.ReviewResponse, error)
	Update(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID) error
}

type reviewService struct {
	reviews repository.ReviewRepository
	log     *zap.Logger
}

func NewReviewService(reviews repository.ReviewRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		reviews: reviews,
		log:     log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, userID uuid.UUID, movieID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, apperrors.New(apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.Rating == nil {
		return nil, apperrors.New(apperrors.ErrValidation, "Rating is required")
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  userID,
		MovieID: movieID,
		Rating:  *req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.New(apperrors.ErrDuplicate, "You have already reviewed this movie")
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", movieID))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListByMovie(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	reviews, err := s.reviews.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	resp := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, response.ReviewWithAuthorToResponse(review))
	}

	return resp, nil
}

func (s *reviewService) GetOwn(ctx context.Context, userID uuid.UUID, movieID int64) (*response.ReviewResponse, error) {
	review, err := s.reviews.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, fmt.Errorf("find own review: %w", err)
	}
	if review == nil {
		return nil, nil
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, apperrors.New(apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "Review not found")
	}
	if review.UserID != userID {
		return nil, apperrors.New(apperrors.ErrForbidden, "Not authorized to update this review")
	}

	// Omitted fields keep their prior value
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = req.Comment
	}
	review.UpdatedAt = time.Now()

	if err := s.reviews.Update(ctx, review); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "Review not found")
		}
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", reviewID.String()),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID.String()),
		zap.String("user_id", userID.String()))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID) error {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return apperrors.New(apperrors.ErrNotFound, "Review not found")
	}
	if review.UserID != userID {
		return apperrors.New(apperrors.ErrForbidden, "Not authorized to delete this review")
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.New(apperrors.ErrNotFound, "Review not found")
		}
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID.String()),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID.String()),
		zap.String("user_id", userID.String()))

	return nil
}
