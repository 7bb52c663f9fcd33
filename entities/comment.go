package entities

import (
	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	Content   string    `gorm:"type:text;not null;check:chk_comments_content,content <> ''" json:"content"`

	Recipe  *Recipe  `gorm:"foreignKey:RecipeID"`
	Account *Account `gorm:"foreignKey:AccountID"`
	Timestamp
}
