package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"movie-tracker/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewTMDBClient(server.URL, "test-key", 2*time.Second, zap.NewNop())
	return client, server
}

func TestDiscover_BuildsQueryParameters(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/discover/movie", r.URL.Path)
		w.Write([]byte(`{"page":1,"results":[{"id":603,"title":"The Matrix"}]}`))
	})

	movies, err := client.Discover(context.Background(), Filters{
		SortBy:    "vote_average.desc",
		GenreID:   "878",
		Year:      "1999",
		RatingGTE: "7",
	})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, int64(603), movies[0].ID)

	assert.Equal(t, "vote_average.desc", gotQuery.Get("sort_by"))
	assert.Equal(t, "878", gotQuery.Get("with_genres"))
	assert.Equal(t, "1999", gotQuery.Get("primary_release_year"))
	assert.Equal(t, "7", gotQuery.Get("vote_average.gte"))
	assert.Equal(t, "false", gotQuery.Get("include_adult"))
	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.Equal(t, "test-key", gotQuery.Get("api_key"))
}

func TestDiscover_DefaultSort(t *testing.T) {
	var gotSort string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSort = r.URL.Query().Get("sort_by")
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	movies, err := client.Discover(context.Background(), Filters{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSort, gotSort)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestSearch_PassesQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "inception", r.URL.Query().Get("query"))
		w.Write([]byte(`{"page":1,"results":[{"id":27205,"title":"Inception"}]}`))
	})

	movies, err := client.Search(context.Background(), "inception")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].Title)
}

func TestDetails_DecodesFullShape(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/27205", r.URL.Path)
		w.Write([]byte(`{
			"id": 27205,
			"title": "Inception",
			"runtime": 148,
			"genres": [{"id": 878, "name": "Science Fiction"}],
			"vote_average": 8.4
		}`))
	})

	detail, err := client.Details(context.Background(), 27205)
	require.NoError(t, err)
	assert.Equal(t, int64(27205), detail.ID)
	assert.Equal(t, 148, detail.Runtime)
	require.Len(t, detail.Genres, 1)
	assert.Equal(t, "Science Fiction", detail.Genres[0].Name)
}

func TestRecommendations_EmptyResults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/27205/recommendations", r.URL.Path)
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	movies, err := client.Recommendations(context.Background(), 27205)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestGet_UpstreamErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Discover(context.Background(), Filters{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUpstream))
}

func TestGet_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.Search(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUpstream))
}
