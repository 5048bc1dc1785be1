package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"movie-tracker/internal/catalog"
	"movie-tracker/internal/usecase"
	"movie-tracker/pkg/apperrors"
	"movie-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log,
	}
}

// Discover handles GET /api/movies
func (h *MovieHandler) Discover(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.Discover(r.Context(), filtersFromQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "discover movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// Search handles GET /api/movies/search
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		utils.ResponseBadRequest(w, "Query parameter is required", nil)
		return
	}

	movies, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.handleServiceError(w, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// Details handles GET /api/movies/{id}
func (h *MovieHandler) Details(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	movie, err := h.service.Details(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie details")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// Recommendations handles GET /api/movies/recommendations
func (h *MovieHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movies, err := h.service.Recommendations(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get recommendations")
		return
	}

	utils.ResponseSuccess(w, "Recommendations retrieved successfully", movies)
}

// filtersFromQuery maps discover query parameters onto catalog filters.
// Unknown parameters are ignored.
func filtersFromQuery(r *http.Request) catalog.Filters {
	query := r.URL.Query()

	sortBy := query.Get("sort_by")
	if sortBy == "" {
		sortBy = query.Get("sort")
	}

	return catalog.Filters{
		SortBy:         sortBy,
		GenreID:        query.Get("with_genres"),
		Year:           query.Get("primary_release_year"),
		RatingGTE:      query.Get("vote_average.gte"),
		RatingLTE:      query.Get("vote_average.lte"),
		ReleaseDateGTE: query.Get("primary_release_date.gte"),
		ReleaseDateLTE: query.Get("primary_release_date.lte"),
	}
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, apperrors.Message(err, "Invalid request"), nil)

	case errors.Is(err, apperrors.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, apperrors.Message(err, "Not found"))

	default:
		// Upstream catalog failures surface as a generic server error.
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
