package like

import (
	"context"
	"errors"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LikeRepository interface {
		TargetExists(ctx context.Context, targetType string, targetID uuid.UUID) (bool, error)
		CreateLike(ctx context.Context, like *entities.Like) (int64, error)
		DeleteLike(ctx context.Context, accountID uuid.UUID, targetType string, targetID uuid.UUID) (int64, error)
		ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.Like, error)
	}

	likeRepository struct {
		db *gorm.DB
	}
)

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func targetColumn(targetType string) string {
	if targetType == domain.TargetComment {
		return "comment_id"
	}
	return "recipe_id"
}

func (r *likeRepository) TargetExists(ctx context.Context, targetType string, targetID uuid.UUID) (bool, error) {
	var model any = &entities.Recipe{}
	if targetType == domain.TargetComment {
		model = &entities.Comment{}
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", targetID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateLike inserts the like and bumps the recipe counter in one
// transaction. A second like on the same target fails on the unique
// index; a missing target fails on the foreign key and is reported as
// the target's not-found error. Returns the resulting like count of the
// target.
func (r *likeRepository) CreateLike(ctx context.Context, like *entities.Like) (int64, error) {
	targetType := domain.TargetRecipe
	if like.CommentID != nil {
		targetType = domain.TargetComment
	}

	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Account", "Recipe", "Comment").Create(like).Error; err != nil {
			if utils.IsForeignKeyViolation(err) {
				return notFound(targetType)
			}
			return err
		}

		if like.RecipeID != nil {
			if err := tx.Model(&entities.Recipe{}).
				Where("id = ?", *like.RecipeID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
				return err
			}
			return recipeLikes(tx, *like.RecipeID, &count)
		}
		return tx.Model(&entities.Like{}).Where("comment_id = ?", *like.CommentID).Count(&count).Error
	})
	return count, err
}

// DeleteLike removes the account's like on the target with a single
// constrained delete, so two concurrent unlikes cannot both succeed.
func (r *likeRepository) DeleteLike(ctx context.Context, accountID uuid.UUID, targetType string, targetID uuid.UUID) (int64, error) {
	column := targetColumn(targetType)

	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("account_id = ? AND "+column+" = ?", accountID, targetID).Delete(&entities.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrLikeNotFound
		}

		if targetType == domain.TargetRecipe {
			if err := tx.Model(&entities.Recipe{}).
				Where("id = ? AND likes > 0", targetID).
				UpdateColumn("likes", gorm.Expr("likes - 1")).Error; err != nil {
				return err
			}
			return recipeLikes(tx, targetID, &count)
		}
		return tx.Model(&entities.Like{}).Where("comment_id = ?", targetID).Count(&count).Error
	})
	return count, err
}

func recipeLikes(tx *gorm.DB, recipeID uuid.UUID, count *int64) error {
	var recipe entities.Recipe
	if err := tx.Select("likes").Where("id = ?", recipeID).Take(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	*count = recipe.Likes
	return nil
}

func (r *likeRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.Like, error) {
	var likes []*entities.Like
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at desc").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
