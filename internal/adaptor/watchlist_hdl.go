package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/usecase"
	"movie-tracker/pkg/apperrors"
	"movie-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/watchlists
func (h *WatchlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateWatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	watchlist, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create watchlist")
		return
	}

	utils.ResponseCreated(w, "Watchlist created", watchlist)
}

// ListAll handles GET /api/watchlists
func (h *WatchlistHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	watchlists, err := h.service.ListAll(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list watchlists")
		return
	}

	utils.ResponseSuccess(w, "Watchlists retrieved successfully", watchlists)
}

// Get handles GET /api/watchlists/{id}
func (h *WatchlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid watchlist ID", nil)
		return
	}

	watchlist, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		h.handleServiceError(w, err, "get watchlist")
		return
	}

	utils.ResponseSuccess(w, "Watchlist retrieved successfully", watchlist)
}

// Rename handles PUT /api/watchlists/{id}
func (h *WatchlistHandler) Rename(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid watchlist ID", nil)
		return
	}

	var req request.RenameWatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	watchlist, err := h.service.Rename(r.Context(), userID, id, &req)
	if err != nil {
		h.handleServiceError(w, err, "rename watchlist")
		return
	}

	utils.ResponseSuccess(w, "Watchlist updated", watchlist)
}

// Delete handles DELETE /api/watchlists/{id}
func (h *WatchlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid watchlist ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		h.handleServiceError(w, err, "delete watchlist")
		return
	}

	utils.ResponseSuccess(w, "Watchlist removed", nil)
}

// AddMovie handles POST /api/watchlists/{id}/movies
func (h *WatchlistHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid watchlist ID", nil)
		return
	}

	var req request.WatchlistMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(errs), errs)
		return
	}

	watchlist, err := h.service.AddMovie(r.Context(), userID, id, req.MovieID)
	if err != nil {
		h.handleServiceError(w, err, "add movie to watchlist")
		return
	}

	utils.ResponseCreated(w, "Movie added to watchlist", watchlist)
}

// RemoveMovie handles DELETE /api/watchlists/{id}/movies/{movieId}
func (h *WatchlistHandler) RemoveMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid watchlist ID", nil)
		return
	}

	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieId"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	watchlist, err := h.service.RemoveMovie(r.Context(), userID, id, movieID)
	if err != nil {
		h.handleServiceError(w, err, "remove movie from watchlist")
		return
	}

	utils.ResponseSuccess(w, "Movie removed from watchlist", watchlist)
}

// ResolveMovies handles GET /api/watchlists/{id}/movies
func (h *WatchlistHandler) ResolveMovies(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid watchlist ID", nil)
		return
	}

	movies, err := h.service.ResolveMovies(r.Context(), userID, id)
	if err != nil {
		h.handleServiceError(w, err, "resolve watchlist movies")
		return
	}

	utils.ResponseSuccess(w, "Watchlist movies retrieved successfully", movies)
}

func (h *WatchlistHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, apperrors.Message(err, "Invalid request"), nil)

	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrForbidden):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, apperrors.Message(err, "Unauthorized"))

	case errors.Is(err, apperrors.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, apperrors.Message(err, "Not found"))

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
