package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	MovieID int64     `db:"movie_id"`
	Rating  float64   `db:"rating"` // 0.5 - 5.0
	Comment *string   `db:"comment"`
}

// ReviewWithAuthor joins the reviewer name onto a review for public listings.
type ReviewWithAuthor struct {
	Review
	AuthorName string `db:"author_name"`
}
