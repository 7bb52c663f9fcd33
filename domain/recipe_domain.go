package domain

import (
	"time"
)

const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategoryDessert   = "dessert"
)

var Categories = []string{CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDessert}

var (
	MessageSuccessGetHome         = "success get home"
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessAddRecipe       = "recipe added successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetHome         = "failed to get home"
	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedAddRecipe       = "error adding recipe, please try again"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound           = NewError(KindNotFound, "recipe not found")
	ErrUnauthorizedRecipeAccess = NewError(KindForbidden, "you do not own this recipe")
	ErrInvalidCategory          = NewError(KindValidation, "category must be one of breakfast, lunch, dinner, dessert")
	ErrNoIngredients            = NewError(KindValidation, "at least one ingredient is required")
)

func IsCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type (
	AddRecipeRequest struct {
		Description string `json:"description" form:"description" validate:"required,max=500"`
		Ingredient  string `json:"ingredient" form:"ingredient" validate:"required"`
		Instruction string `json:"instruction" form:"instruction" validate:"required"`
		Category    string `json:"category" form:"category" validate:"required,oneof=breakfast lunch dinner dessert"`
	}

	SearchRecipesRequest struct {
		Query    string `query:"q"`
		Category string `query:"category"`
	}

	RecipeResponse struct {
		ID          string    `json:"id"`
		Description string    `json:"description"`
		Ingredients []string  `json:"ingredients"`
		Instruction string    `json:"instruction"`
		Category    string    `json:"category"`
		Photo       string    `json:"photo,omitempty"`
		Likes       int64     `json:"likes"`
		CreatedAt   time.Time `json:"created_at"`
	}

	RecipeDetail struct {
		Recipe          RecipeResponse    `json:"recipe"`
		Creator         *ProfileResponse  `json:"creator"`
		Comments        []CommentResponse `json:"comments"`
		HasLiked        bool              `json:"has_liked"`
		CurrentCategory string            `json:"current_category"`
		Flash           *Flash            `json:"flash,omitempty"`
	}

	HomeResponse struct {
		Category    string           `json:"category,omitempty"`
		DailyRecipe *RecipeResponse  `json:"daily_recipe,omitempty"`
		HotRecipes  []RecipeResponse `json:"hot_recipes"`
		TopCooks    []CookSummary    `json:"top_cooks"`
		Recipes     []RecipeResponse `json:"recipes,omitempty"`
		Flash       *Flash           `json:"flash,omitempty"`
	}

	SearchResponse struct {
		Query    string           `json:"query"`
		Category string           `json:"category,omitempty"`
		Recipes  []RecipeResponse `json:"recipes"`
	}

	AddRecipePage struct {
		Categories []string `json:"categories"`
		Flash      *Flash   `json:"flash,omitempty"`
	}
)
