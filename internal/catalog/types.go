package catalog

// MovieSummary is the list-item shape returned by discover, search and
// recommendation calls. Field names follow the upstream catalog payload.
type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	GenreIDs    []int64 `json:"genre_ids"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the full shape for a single movie.
type MovieDetail struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
	ReleaseDate string  `json:"release_date"`
	Genres      []Genre `json:"genres"`
	Runtime     int     `json:"runtime"`
	Tagline     string  `json:"tagline"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
}

// Filters map to the upstream discover query parameters. Zero values are
// omitted from the request; SortBy falls back to popularity descending.
type Filters struct {
	SortBy         string
	GenreID        string
	Year           string
	RatingGTE      string
	RatingLTE      string
	ReleaseDateGTE string
	ReleaseDateLTE string
}

// DefaultSort is the discover ordering used when no sort key is given and by
// the popular-movies recommendation fallback.
const DefaultSort = "popularity.desc"
