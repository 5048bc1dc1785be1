package repository

import (
	"context"
	"errors"
	"testing"

	"movie-tracker/pkg/apperrors"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFavoriteTestFixture(t *testing.T) (FavoriteRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewFavoriteRepository(mock, zap.NewNop())
	return repo, mock
}

func TestFavoriteRepository_Add_Success(t *testing.T) {
	repo, mock := newFavoriteTestFixture(t)
	defer mock.Close()

	userID := uuid.New()

	mock.ExpectExec("INSERT INTO favorites").
		WithArgs(userID, int64(603), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Add(context.Background(), userID, 603)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_Add_Duplicate(t *testing.T) {
	repo, mock := newFavoriteTestFixture(t)
	defer mock.Close()

	userID := uuid.New()

	// Conflict target swallows the insert, zero rows affected
	mock.ExpectExec("INSERT INTO favorites").
		WithArgs(userID, int64(603), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err := repo.Add(context.Background(), userID, 603)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_Remove_AbsentIsNoop(t *testing.T) {
	repo, mock := newFavoriteTestFixture(t)
	defer mock.Close()

	userID := uuid.New()

	mock.ExpectExec("DELETE FROM favorites").
		WithArgs(userID, int64(999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Remove(context.Background(), userID, 999)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_List_PreservesInsertionOrder(t *testing.T) {
	repo, mock := newFavoriteTestFixture(t)
	defer mock.Close()

	userID := uuid.New()

	rows := pgxmock.NewRows([]string{"movie_id"}).
		AddRow(int64(603)).
		AddRow(int64(27205)).
		AddRow(int64(155))

	mock.ExpectQuery("SELECT movie_id").
		WithArgs(userID).
		WillReturnRows(rows)

	movieIDs, err := repo.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []int64{603, 27205, 155}, movieIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_List_QueryError(t *testing.T) {
	repo, mock := newFavoriteTestFixture(t)
	defer mock.Close()

	userID := uuid.New()

	mock.ExpectQuery("SELECT movie_id").
		WithArgs(userID).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.List(context.Background(), userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list favorites")
	assert.NoError(t, mock.ExpectationsWereMet())
}
