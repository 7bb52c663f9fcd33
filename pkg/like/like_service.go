package like

import (
	"context"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/internal/utils"

	"github.com/google/uuid"
)

type (
	LikeService interface {
		Like(ctx context.Context, accountID string, targetType string, targetID string) (domain.LikeResponse, error)
		Unlike(ctx context.Context, accountID string, targetType string, targetID string) (domain.LikeResponse, error)
		ListByAccount(ctx context.Context, accountID string) ([]domain.LikedItem, error)
	}

	likeService struct {
		likeRepository LikeRepository
	}
)

func NewLikeService(likeRepository LikeRepository) LikeService {
	return &likeService{likeRepository: likeRepository}
}

func notFound(targetType string) error {
	if targetType == domain.TargetComment {
		return domain.ErrCommentNotFound
	}
	return domain.ErrRecipeNotFound
}

func (s *likeService) resolve(ctx context.Context, accountID string, targetType string, targetID string) (uuid.UUID, uuid.UUID, error) {
	if targetType != domain.TargetRecipe && targetType != domain.TargetComment {
		return uuid.Nil, uuid.Nil, domain.ErrInvalidLikeTarget
	}
	account, err := uuid.Parse(accountID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrLoginRequired
	}
	target, err := uuid.Parse(targetID)
	if err != nil {
		return uuid.Nil, uuid.Nil, notFound(targetType)
	}

	// early exit only; CreateLike relies on the foreign keys
	exists, err := s.likeRepository.TargetExists(ctx, targetType, target)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if !exists {
		return uuid.Nil, uuid.Nil, notFound(targetType)
	}
	return account, target, nil
}

func (s *likeService) Like(ctx context.Context, accountID string, targetType string, targetID string) (domain.LikeResponse, error) {
	account, target, err := s.resolve(ctx, accountID, targetType, targetID)
	if err != nil {
		return domain.LikeResponse{}, err
	}

	like := &entities.Like{
		ID:        uuid.New(),
		AccountID: account,
	}
	if targetType == domain.TargetRecipe {
		like.RecipeID = &target
	} else {
		like.CommentID = &target
	}

	count, err := s.likeRepository.CreateLike(ctx, like)
	if err != nil {
		if utils.IsDuplicateKey(err) {
			return domain.LikeResponse{}, domain.ErrAlreadyLiked
		}
		return domain.LikeResponse{}, err
	}

	return domain.LikeResponse{
		TargetType: targetType,
		TargetID:   target.String(),
		Likes:      count,
	}, nil
}

func (s *likeService) Unlike(ctx context.Context, accountID string, targetType string, targetID string) (domain.LikeResponse, error) {
	account, target, err := s.resolve(ctx, accountID, targetType, targetID)
	if err != nil {
		return domain.LikeResponse{}, err
	}

	count, err := s.likeRepository.DeleteLike(ctx, account, targetType, target)
	if err != nil {
		return domain.LikeResponse{}, err
	}

	return domain.LikeResponse{
		TargetType: targetType,
		TargetID:   target.String(),
		Likes:      count,
	}, nil
}

func (s *likeService) ListByAccount(ctx context.Context, accountID string) ([]domain.LikedItem, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	likes, err := s.likeRepository.ListByAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]domain.LikedItem, 0, len(likes))
	for _, l := range likes {
		item := domain.LikedItem{CreatedAt: l.CreatedAt}
		if l.RecipeID != nil {
			item.TargetType = domain.TargetRecipe
			item.TargetID = l.RecipeID.String()
		} else if l.CommentID != nil {
			item.TargetType = domain.TargetComment
			item.TargetID = l.CommentID.String()
		}
		out = append(out, item)
	}
	return out, nil
}
