package comment

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentService interface {
		AddComment(ctx context.Context, accountID string, recipeID string, req domain.AddCommentRequest) (domain.CommentResponse, error)
		DeleteComment(ctx context.Context, accountID string, commentID string) error
		ListByRecipe(ctx context.Context, recipeID string, viewerID string) ([]domain.CommentResponse, error)
		ListByAccount(ctx context.Context, accountID string) ([]domain.CommentResponse, error)
	}

	commentService struct {
		commentRepository CommentRepository
		userRepository    user.UserRepository
	}
)

func NewCommentService(commentRepository CommentRepository, userRepository user.UserRepository) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		userRepository:    userRepository,
	}
}

func (s *commentService) AddComment(ctx context.Context, accountID string, recipeID string, req domain.AddCommentRequest) (domain.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.CommentResponse{}, domain.ErrEmptyComment
	}
	if utf8.RuneCountInString(content) > domain.MaxCommentLength {
		return domain.CommentResponse{}, domain.ErrCommentTooLong
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrRecipeNotFound
	}
	exists, err := s.commentRepository.RecipeExists(ctx, recipeUUID)
	if err != nil {
		return domain.CommentResponse{}, err
	}
	if !exists {
		return domain.CommentResponse{}, domain.ErrRecipeNotFound
	}

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrProfileNotFound
	}
	profile, err := s.userRepository.GetProfileByAccountID(ctx, accountUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrProfileNotFound
		}
		return domain.CommentResponse{}, err
	}

	comment := &entities.Comment{
		ID:        uuid.New(),
		RecipeID:  recipeUUID,
		AccountID: accountUUID,
		Content:   content,
	}
	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	return domain.CommentResponse{
		ID:         comment.ID.String(),
		RecipeID:   comment.RecipeID.String(),
		AccountID:  comment.AccountID.String(),
		Content:    comment.Content,
		AuthorName: user.ToProfileResponse(profile).DisplayName(),
		CreatedAt:  comment.CreatedAt,
	}, nil
}

func (s *commentService) DeleteComment(ctx context.Context, accountID string, commentID string) error {
	id, err := uuid.Parse(commentID)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	comment, err := s.commentRepository.GetCommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if comment.AccountID.String() != accountID {
		return domain.ErrUnauthorizedCommentAccess
	}

	return s.commentRepository.DeleteComment(ctx, comment.ID)
}

func (s *commentService) ListByRecipe(ctx context.Context, recipeID string, viewerID string) ([]domain.CommentResponse, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}
	return s.commentRepository.ListByRecipe(ctx, id, ParseViewer(viewerID))
}

func (s *commentService) ListByAccount(ctx context.Context, accountID string) ([]domain.CommentResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return s.commentRepository.ListByAccount(ctx, id)
}

// ParseViewer maps an anonymous or malformed viewer id to uuid.Nil, which
// never matches a like row.
func ParseViewer(viewerID string) uuid.UUID {
	id, err := uuid.Parse(viewerID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
