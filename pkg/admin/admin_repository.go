package admin

import (
	"context"

	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/pkg/comment"
	"Go-Recipe-Share/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		DeleteAccountCascade(ctx context.Context, accountID uuid.UUID) error
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// DeleteAccountCascade removes an account and everything hanging off it:
// owned recipes with their comments and likes, comments written on other
// recipes, likes given (keeping recipe counters in step), the profile and
// the account row.
func (r *adminRepository) DeleteAccountCascade(ctx context.Context, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipeIDs []uuid.UUID
		if err := tx.Model(&entities.RecipeOwner{}).
			Where("account_id = ?", accountID).
			Pluck("recipe_id", &recipeIDs).Error; err != nil {
			return err
		}
		if err := recipe.DeleteRecipesTx(tx, recipeIDs); err != nil {
			return err
		}

		var commentIDs []uuid.UUID
		if err := tx.Model(&entities.Comment{}).
			Where("account_id = ?", accountID).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if err := comment.DeleteCommentsTx(tx, commentIDs); err != nil {
			return err
		}

		liked := tx.Model(&entities.Like{}).
			Select("recipe_id").
			Where("account_id = ? AND recipe_id IS NOT NULL", accountID)
		if err := tx.Model(&entities.Recipe{}).
			Where("likes > 0 AND id IN (?)", liked).
			UpdateColumn("likes", gorm.Expr("likes - 1")).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", accountID).Delete(&entities.Like{}).Error; err != nil {
			return err
		}

		if err := tx.Where("account_id = ?", accountID).Delete(&entities.Profile{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", accountID).Delete(&entities.Account{}).Error
	})
}
