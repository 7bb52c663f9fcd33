package domain

import (
	"time"
)

const MaxCommentLength = 2000

var (
	MessageSuccessAddComment    = "comment added successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"

	MessageFailedAddComment    = "error adding comment"
	MessageFailedDeleteComment = "error deleting comment"

	ErrCommentNotFound           = NewError(KindNotFound, "comment not found")
	ErrUnauthorizedCommentAccess = NewError(KindForbidden, "you did not write this comment")
	ErrEmptyComment              = NewError(KindValidation, "comment content is required")
	ErrCommentTooLong            = NewError(KindValidation, "comment must be at most 2000 characters")
)

type (
	AddCommentRequest struct {
		Content string `json:"content" form:"content" validate:"required,max=2000"`
	}

	CommentResponse struct {
		ID         string    `json:"id"`
		RecipeID   string    `json:"recipe_id"`
		AccountID  string    `json:"account_id"`
		Content    string    `json:"content"`
		AuthorName string    `json:"author_name"`
		Likes      int64     `json:"likes"`
		HasLiked   bool      `json:"has_liked"`
		CreatedAt  time.Time `json:"created_time"`
	}
)
