package request

// Rating stays a pointer so an absent rating is distinguishable from zero;
// the service rejects the absent case with its own message.
type CreateReviewRequest struct {
	Rating  *float64 `json:"rating" validate:"omitempty,min=0.5,max=5"`
	Comment *string  `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type UpdateReviewRequest struct {
	Rating  *float64 `json:"rating,omitempty" validate:"omitempty,min=0.5,max=5"`
	Comment *string  `json:"comment,omitempty" validate:"omitempty,max=1000"`
}
