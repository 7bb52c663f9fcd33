// File: entities/recipe.go
package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Ingredients []string  `gorm:"type:text;not null;serializer:json" json:"ingredients"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
	Category    string    `gorm:"size:16;not null;index;check:chk_recipes_category,category IN ('breakfast','lunch','dinner','dessert')" json:"category"`
	Photo       string    `gorm:"type:text" json:"photo,omitempty"`
	Likes       int64     `gorm:"not null;default:0" json:"likes"`

	Owner *RecipeOwner `gorm:"foreignKey:RecipeID"`
	Timestamp
}

// RecipeOwner links a recipe to the account that created it. The unique
// recipe id also makes every (recipe, account) pair unique.
type RecipeOwner struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"recipe_id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Account *Account `gorm:"foreignKey:AccountID"`
}
