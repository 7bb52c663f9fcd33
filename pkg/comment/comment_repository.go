package comment

import (
	"context"
	"time"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentRepository interface {
		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error)
		DeleteComment(ctx context.Context, id uuid.UUID) error
		RecipeExists(ctx context.Context, recipeID uuid.UUID) (bool, error)
		ListByRecipe(ctx context.Context, recipeID uuid.UUID, viewerID uuid.UUID) ([]domain.CommentResponse, error)
		ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.CommentResponse, error)
	}

	commentRepository struct {
		db *gorm.DB
	}

	commentRow struct {
		ID        uuid.UUID
		RecipeID  uuid.UUID
		AccountID uuid.UUID
		Content   string
		CreatedAt time.Time
		FirstName string
		LastName  string
		Likes     int64
		HasLiked  bool
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return DeleteCommentsTx(tx, []uuid.UUID{id})
	})
}

// DeleteCommentsTx removes the comments and the likes pointing at them.
// It must run inside the caller's transaction.
func DeleteCommentsTx(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("comment_id IN ?", ids).Delete(&entities.Like{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&entities.Comment{}).Error
}

func (r *commentRepository) RecipeExists(ctx context.Context, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *commentRepository) baseQuery(ctx context.Context, viewerID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Select(`comments.id, comments.recipe_id, comments.account_id, comments.content, comments.created_at,
			COALESCE(profiles.first_name, '') AS first_name,
			COALESCE(profiles.last_name, '') AS last_name,
			(SELECT COUNT(*) FROM likes WHERE likes.comment_id = comments.id) AS likes,
			EXISTS (SELECT 1 FROM likes WHERE likes.comment_id = comments.id AND likes.account_id = ?) AS has_liked`, viewerID).
		Joins("LEFT JOIN profiles ON profiles.account_id = comments.account_id").
		Order("comments.created_at DESC, comments.id DESC")
}

func (r *commentRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID, viewerID uuid.UUID) ([]domain.CommentResponse, error) {
	var rows []commentRow
	if err := r.baseQuery(ctx, viewerID).
		Where("comments.recipe_id = ?", recipeID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (r *commentRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.CommentResponse, error) {
	var rows []commentRow
	if err := r.baseQuery(ctx, accountID).
		Where("comments.account_id = ?", accountID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func toResponses(rows []commentRow) []domain.CommentResponse {
	out := make([]domain.CommentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CommentResponse{
			ID:         row.ID.String(),
			RecipeID:   row.RecipeID.String(),
			AccountID:  row.AccountID.String(),
			Content:    row.Content,
			AuthorName: domain.ProfileResponse{FirstName: row.FirstName, LastName: row.LastName}.DisplayName(),
			Likes:      row.Likes,
			HasLiked:   row.HasLiked,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out
}
