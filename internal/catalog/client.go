package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-tracker/pkg/apperrors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Client is the outbound contract against the third-party movie catalog.
type Client interface {
	Discover(ctx context.Context, filters Filters) ([]MovieSummary, error)
	Search(ctx context.Context, query string) ([]MovieSummary, error)
	Details(ctx context.Context, id int64) (*MovieDetail, error)
	Recommendations(ctx context.Context, id int64) ([]MovieSummary, error)
}

var breakerState = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "catalog_breaker_state",
	Help: "Current state of the catalog circuit breaker (0=closed, 1=half-open, 2=open)",
})

func init() {
	prometheus.MustRegister(breakerState)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

type tmdbClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	log     *zap.Logger
}

// NewTMDBClient builds the catalog client. Upstream calls run through a
// circuit breaker; there is no retry and no caching, every call is a fresh
// round trip.
func NewTMDBClient(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) Client {
	settings := gobreaker.Settings{
		Name:    "tmdb",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Catalog circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			breakerState.Set(stateToFloat(to))
		},
	}

	return &tmdbClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		log:     log.With(zap.String("client", "tmdb")),
	}
}

// listResponse is the paged envelope the catalog wraps list results in.
type listResponse struct {
	Page    int            `json:"page"`
	Results []MovieSummary `json:"results"`
}

func (c *tmdbClient) Discover(ctx context.Context, filters Filters) ([]MovieSummary, error) {
	params := url.Values{}

	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = DefaultSort
	}
	params.Set("sort_by", sortBy)

	if filters.GenreID != "" {
		params.Set("with_genres", filters.GenreID)
	}
	if filters.Year != "" {
		params.Set("primary_release_year", filters.Year)
	}
	if filters.RatingGTE != "" {
		params.Set("vote_average.gte", filters.RatingGTE)
	}
	if filters.RatingLTE != "" {
		params.Set("vote_average.lte", filters.RatingLTE)
	}
	if filters.ReleaseDateGTE != "" {
		params.Set("primary_release_date.gte", filters.ReleaseDateGTE)
	}
	if filters.ReleaseDateLTE != "" {
		params.Set("primary_release_date.lte", filters.ReleaseDateLTE)
	}

	// Adult content is always excluded and only the first page is served
	params.Set("include_adult", "false")
	params.Set("page", "1")

	body, err := c.get(ctx, "/discover/movie", params)
	if err != nil {
		return nil, err
	}

	return c.decodeList(body, "/discover/movie")
}

func (c *tmdbClient) Search(ctx context.Context, query string) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	params.Set("page", "1")

	body, err := c.get(ctx, "/search/movie", params)
	if err != nil {
		return nil, err
	}

	return c.decodeList(body, "/search/movie")
}

func (c *tmdbClient) Details(ctx context.Context, id int64) (*MovieDetail, error) {
	path := "/movie/" + strconv.FormatInt(id, 10)

	body, err := c.get(ctx, path, url.Values{})
	if err != nil {
		return nil, err
	}

	var detail MovieDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		c.log.Error("Failed to decode movie detail", zap.Error(err), zap.Int64("movie_id", id))
		return nil, fmt.Errorf("decode %s response: %w", path, apperrors.ErrUpstream)
	}

	return &detail, nil
}

func (c *tmdbClient) Recommendations(ctx context.Context, id int64) ([]MovieSummary, error) {
	path := "/movie/" + strconv.FormatInt(id, 10) + "/recommendations"

	params := url.Values{}
	params.Set("page", "1")

	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	return c.decodeList(body, path)
}

// get performs one upstream round trip through the circuit breaker.
func (c *tmdbClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	body, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("call %s: %w", path, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("call %s: status %d", path, resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read %s response: %w", path, err)
		}

		return data, nil
	})

	if err != nil {
		c.log.Error("Catalog request failed",
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("tmdb %s: %s: %w", path, err.Error(), apperrors.ErrUpstream)
	}

	return body, nil
}

func (c *tmdbClient) decodeList(body []byte, path string) ([]MovieSummary, error) {
	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		c.log.Error("Failed to decode movie list", zap.Error(err), zap.String("path", path))
		return nil, fmt.Errorf("decode %s response: %w", path, apperrors.ErrUpstream)
	}

	if list.Results == nil {
		return []MovieSummary{}, nil
	}

	return list.Results, nil
}
