package recipe

import (
	"context"
	"strings"

	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/pkg/comment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ownerID uuid.UUID) error
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		CountLikes(ctx context.Context, recipeID uuid.UUID) (int64, error)
		HasLiked(ctx context.Context, recipeID uuid.UUID, accountID uuid.UUID) (bool, error)
		SearchRecipes(ctx context.Context, query string, category string) ([]*entities.Recipe, error)
		ListByOwner(ctx context.Context, accountID uuid.UUID) ([]*entities.Recipe, error)
		HotRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		DailyRecipe(ctx context.Context, day int64) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uuid.UUID) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Owner").Create(recipe).Error; err != nil {
			return err
		}
		owner := &entities.RecipeOwner{
			ID:        uuid.New(),
			RecipeID:  recipe.ID,
			AccountID: ownerID,
		}
		if err := tx.Omit("Account").Create(owner).Error; err != nil {
			return err
		}
		recipe.Owner = owner
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) CountLikes(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) HasLiked(ctx context.Context, recipeID uuid.UUID, accountID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("recipe_id = ? AND account_id = ?", recipeID, accountID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SearchRecipes matches query as a case-insensitive substring of the
// description. Wildcards typed by the user are matched literally.
func (r *recipeRepository) SearchRecipes(ctx context.Context, query string, category string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	tx := r.db.WithContext(ctx)
	if query != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
		tx = tx.Where("LOWER(description) LIKE ? ESCAPE '\\'", pattern)
	}
	if category != "" {
		tx = tx.Where("category = ?", category)
	}

	if err := tx.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) ListByOwner(ctx context.Context, accountID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN recipe_owners ON recipe_owners.recipe_id = recipes.id").
		Where("recipe_owners.account_id = ?", accountID).
		Order("recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) HotRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("likes desc, created_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// DailyRecipe picks one recipe per day, stable for the whole day as long
// as the set of recipes does not change. Returns nil when there are none.
func (r *recipeRepository) DailyRecipe(ctx context.Context, day int64) (*entities.Recipe, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	if day < 0 {
		day = -day
	}

	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Offset(int(day % count)).
		Limit(1).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, nil
	}
	return recipes[0], nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return DeleteRecipesTx(tx, []uuid.UUID{id})
	})
}

// DeleteRecipesTx removes recipes together with their comments, the likes
// on those comments, the likes on the recipes and the owner rows. It must
// run inside the caller's transaction.
func DeleteRecipesTx(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	var commentIDs []uuid.UUID
	if err := tx.Model(&entities.Comment{}).Where("recipe_id IN ?", ids).Pluck("id", &commentIDs).Error; err != nil {
		return err
	}
	if err := comment.DeleteCommentsTx(tx, commentIDs); err != nil {
		return err
	}
	if err := tx.Where("recipe_id IN ?", ids).Delete(&entities.Like{}).Error; err != nil {
		return err
	}
	if err := tx.Where("recipe_id IN ?", ids).Delete(&entities.RecipeOwner{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&entities.Recipe{}).Error
}
