package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-tracker/internal/catalog"
	"movie-tracker/internal/data/entity"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/dto/request"
	"movie-tracker/pkg/apperrors"
	"movie-tracker/pkg/token"
	"movie-tracker/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type userFixture struct {
	users     *mockUserRepository
	favorites *mockFavoriteRepository
	catalog   *mockCatalogClient
	service   UserService
}

func newUserFixture() *userFixture {
	users := new(mockUserRepository)
	favorites := new(mockFavoriteRepository)
	catalogClient := new(mockCatalogClient)

	repo := &repository.Repository{
		User:     users,
		Favorite: favorites,
	}
	tokens := token.NewManager("test-secret", time.Hour)

	return &userFixture{
		users:     users,
		favorites: favorites,
		catalog:   catalogClient,
		service:   NewUserService(repo, catalogClient, tokens, zap.NewNop()),
	}
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	f := newUserFixture()
	userID := uuid.New()

	f.users.On("FindByID", mock.Anything, userID).Return(nil, nil)

	_, err := f.service.GetProfile(context.Background(), userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "User not found", apperrors.Message(err, ""))
}

func TestUserService_UpdateProfile_MergesFields(t *testing.T) {
	f := newUserFixture()

	hashed, err := utils.HashPassword("old-password")
	require.NoError(t, err)

	stored := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: hashed,
	}

	f.users.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)
	f.users.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	newName := "Ada Lovelace"
	resp, err := f.service.UpdateProfile(context.Background(), stored.ID, &request.UpdateProfileRequest{
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", resp.Name)
	// Email was omitted and survives unchanged
	assert.Equal(t, "ada@example.com", resp.Email)
	// Profile updates re-issue the credential
	assert.NotEmpty(t, resp.Token)
}

func TestUserService_UpdateProfile_DuplicateEmail(t *testing.T) {
	f := newUserFixture()

	stored := &entity.User{
		Base:  entity.Base{ID: uuid.New()},
		Name:  "Ada",
		Email: "ada@example.com",
	}

	f.users.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)
	f.users.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(apperrors.ErrDuplicate)

	taken := "taken@example.com"
	_, err := f.service.UpdateProfile(context.Background(), stored.ID, &request.UpdateProfileRequest{
		Email: &taken,
	})
	require.Error(t, err)
	assert.Equal(t, "Email already in use", apperrors.Message(err, ""))
}

func TestUserService_AddFavorite_ReturnsFullList(t *testing.T) {
	f := newUserFixture()
	userID := uuid.New()

	f.favorites.On("Add", mock.Anything, userID, int64(155)).Return(nil)
	f.favorites.On("List", mock.Anything, userID).Return([]int64{603, 27205, 155}, nil)

	favorites, err := f.service.AddFavorite(context.Background(), userID, 155)
	require.NoError(t, err)
	assert.Equal(t, []int64{603, 27205, 155}, favorites)
}

func TestUserService_AddFavorite_Duplicate(t *testing.T) {
	f := newUserFixture()
	userID := uuid.New()

	f.favorites.On("Add", mock.Anything, userID, int64(603)).
		Return(apperrors.ErrDuplicate)

	_, err := f.service.AddFavorite(context.Background(), userID, 603)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	assert.Equal(t, "Movie already in favorites", apperrors.Message(err, ""))

	f.favorites.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUserService_RemoveFavorite_AbsentIsNoop(t *testing.T) {
	f := newUserFixture()
	userID := uuid.New()

	f.favorites.On("Remove", mock.Anything, userID, int64(999)).Return(nil)

	err := f.service.RemoveFavorite(context.Background(), userID, 999)
	assert.NoError(t, err)
}

func TestUserService_ListFavorites_ResolvesDetailsInOrder(t *testing.T) {
	f := newUserFixture()
	userID := uuid.New()

	f.favorites.On("List", mock.Anything, userID).Return([]int64{27205, 603}, nil)
	f.catalog.On("Details", mock.Anything, int64(27205)).
		Return(&catalog.MovieDetail{ID: 27205, Title: "Inception"}, nil)
	f.catalog.On("Details", mock.Anything, int64(603)).
		Return(&catalog.MovieDetail{ID: 603, Title: "The Matrix"}, nil)

	details, err := f.service.ListFavorites(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "Inception", details[0].Title)
	assert.Equal(t, "The Matrix", details[1].Title)
}

func TestUserService_ListFavorites_UpstreamFailureFailsAggregate(t *testing.T) {
	f := newUserFixture()
	userID := uuid.New()

	f.favorites.On("List", mock.Anything, userID).Return([]int64{27205, 603}, nil)
	f.catalog.On("Details", mock.Anything, int64(27205)).
		Return(&catalog.MovieDetail{ID: 27205}, nil).Maybe()
	f.catalog.On("Details", mock.Anything, int64(603)).
		Return(nil, apperrors.ErrUpstream)

	_, err := f.service.ListFavorites(context.Background(), userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUpstream))
}
