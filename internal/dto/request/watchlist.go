package request

type CreateWatchlistRequest struct {
	Name   string  `json:"name" validate:"omitempty,max=100"`
	Movies []int64 `json:"movies,omitempty"`
}

type RenameWatchlistRequest struct {
	Name string `json:"name" validate:"omitempty,max=100"`
}

type WatchlistMovieRequest struct {
	MovieID int64 `json:"movieId" validate:"required,gt=0"`
}
