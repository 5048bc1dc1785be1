package entity

import (
	"github.com/google/uuid"
)

type Watchlist struct {
	Base
	UserID uuid.UUID `db:"user_id"`
	Name   string    `db:"name"`

	// External movie ids in insertion order.
	Movies []int64
}
