package entities

import (
	"time"

	"github.com/google/uuid"
)

// Like targets exactly one of a recipe or a comment. The two composite
// unique indexes make a second like from the same account on the same
// target fail at insert time, and the foreign keys reject a like on a
// target that no longer exists.
type Like struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AccountID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_likes_account_recipe;uniqueIndex:idx_likes_account_comment" json:"account_id"`
	RecipeID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_account_recipe;check:chk_likes_target,(recipe_id IS NULL) <> (comment_id IS NULL)" json:"recipe_id,omitempty"`
	CommentID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_account_comment" json:"comment_id,omitempty"`
	CreatedAt time.Time  `gorm:"type:timestamp" json:"created_at"`

	Account *Account `gorm:"foreignKey:AccountID"`
	Recipe  *Recipe  `gorm:"foreignKey:RecipeID"`
	Comment *Comment `gorm:"foreignKey:CommentID"`
}
