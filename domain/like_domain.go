package domain

import (
	"time"
)

const (
	TargetRecipe  = "recipe"
	TargetComment = "comment"
)

var (
	MessageSuccessLike   = "liked"
	MessageSuccessUnlike = "unliked"

	MessageFailedLike   = "failed to like"
	MessageFailedUnlike = "failed to unlike"

	ErrAlreadyLiked      = NewError(KindConflict, "you already liked this")
	ErrLikeNotFound      = NewError(KindNotFound, "you have not liked this")
	ErrInvalidLikeTarget = NewError(KindValidation, "like target must be a recipe or a comment")
)

type (
	LikeResponse struct {
		TargetType string `json:"target_type"`
		TargetID   string `json:"target_id"`
		Likes      int64  `json:"likes"`
	}

	LikedItem struct {
		TargetType string    `json:"target_type"`
		TargetID   string    `json:"target_id"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
