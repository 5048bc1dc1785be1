package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-tracker/internal/data/entity"
	"movie-tracker/internal/dto/request"
	"movie-tracker/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ratingPtr(v float64) *float64 { return &v }
func strPtr(v string) *string      { return &v }

func storedReview(userID uuid.UUID) *entity.Review {
	now := time.Now()
	return &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  userID,
		MovieID: 27205,
		Rating:  4.0,
		Comment: strPtr("Solid"),
	}
}

func TestReviewService_Create_Success(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	userID := uuid.New()

	reviews.On("Create", mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)

	resp, err := service.Create(context.Background(), userID, 27205, &request.CreateReviewRequest{
		Rating:  ratingPtr(4.5),
		Comment: strPtr("Great movie"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, resp.Rating)
	assert.Equal(t, int64(27205), resp.MovieID)
	assert.Equal(t, userID.String(), resp.UserID)
}

func TestReviewService_Create_MissingRating(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	_, err := service.Create(context.Background(), uuid.New(), 27205, &request.CreateReviewRequest{
		Comment: strPtr("No rating given"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "Rating is required", apperrors.Message(err, ""))

	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_Create_SecondReview(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	reviews.On("Create", mock.Anything, mock.AnythingOfType("*entity.Review")).
		Return(apperrors.ErrDuplicate)

	_, err := service.Create(context.Background(), uuid.New(), 27205, &request.CreateReviewRequest{
		Rating: ratingPtr(3.0),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	assert.Equal(t, "You have already reviewed this movie", apperrors.Message(err, ""))
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	_, err := service.Create(context.Background(), uuid.New(), 27205, &request.CreateReviewRequest{
		Rating: ratingPtr(5.5),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestReviewService_GetOwn_NoneIsNotAnError(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	userID := uuid.New()
	reviews.On("FindByUserAndMovie", mock.Anything, userID, int64(603)).Return(nil, nil)

	resp, err := service.GetOwn(context.Background(), userID, 603)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestReviewService_Update_MergesOmittedFields(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	userID := uuid.New()
	existing := storedReview(userID)

	reviews.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	reviews.On("Update", mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)

	resp, err := service.Update(context.Background(), userID, existing.ID, &request.UpdateReviewRequest{
		Rating: ratingPtr(5.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, resp.Rating)
	// Comment was omitted, so the stored one survives
	require.NotNil(t, resp.Comment)
	assert.Equal(t, "Solid", *resp.Comment)
}

func TestReviewService_Update_NotFound(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	reviewID := uuid.New()
	reviews.On("FindByID", mock.Anything, reviewID).Return(nil, nil)

	_, err := service.Update(context.Background(), uuid.New(), reviewID, &request.UpdateReviewRequest{
		Rating: ratingPtr(2.0),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "Review not found", apperrors.Message(err, ""))
}

func TestReviewService_Update_NotOwner(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	existing := storedReview(uuid.New())
	reviews.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	_, err := service.Update(context.Background(), uuid.New(), existing.ID, &request.UpdateReviewRequest{
		Rating: ratingPtr(1.0),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	assert.Equal(t, "Not authorized to update this review", apperrors.Message(err, ""))

	reviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReviewService_Delete_Success(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	userID := uuid.New()
	existing := storedReview(userID)

	reviews.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	reviews.On("Delete", mock.Anything, existing.ID).Return(nil)

	err := service.Delete(context.Background(), userID, existing.ID)
	assert.NoError(t, err)
}

func TestReviewService_Delete_NotOwner(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	existing := storedReview(uuid.New())
	reviews.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	err := service.Delete(context.Background(), uuid.New(), existing.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	assert.Equal(t, "Not authorized to delete this review", apperrors.Message(err, ""))

	reviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestReviewService_ListByMovie_IncludesAuthorNames(t *testing.T) {
	reviews := new(mockReviewRepository)
	service := NewReviewService(reviews, zap.NewNop())

	stored := []*entity.ReviewWithAuthor{
		{Review: *storedReview(uuid.New()), AuthorName: "Ada"},
		{Review: *storedReview(uuid.New()), AuthorName: "Grace"},
	}
	reviews.On("FindByMovieID", mock.Anything, int64(27205)).Return(stored, nil)

	resp, err := service.ListByMovie(context.Background(), 27205)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Ada", resp[0].UserName)
	assert.Equal(t, "Grace", resp[1].UserName)
}
