package handlers

import (
	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/internal/api/presenters"
	"Go-Recipe-Share/internal/middleware"
	"Go-Recipe-Share/pkg/comment"
	"Go-Recipe-Share/pkg/jwt"
	"Go-Recipe-Share/pkg/like"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	CommentHandler interface {
		AddComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
		LikeComment(c *fiber.Ctx) error
		UnlikeComment(c *fiber.Ctx) error
	}

	commentHandler struct {
		responder
		commentService comment.CommentService
		likeService    like.LikeService
	}
)

func NewCommentHandler(
	commentService comment.CommentService,
	likeService like.LikeService,
	validator *validator.Validate,
	flashes jwt.JWTService,
	logger *zap.Logger,
) CommentHandler {
	return &commentHandler{
		responder:      newResponder(flashes, validator, logger),
		commentService: commentService,
		likeService:    likeService,
	}
}

func (h *commentHandler) AddComment(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)
	req := new(domain.AddCommentRequest)

	if err := h.parse(c, req); err != nil {
		return h.fail(c, domain.MessageFailedAddComment, err, "")
	}

	res, err := h.commentService.AddComment(c.Context(), userID, c.Params("recipeId"), *req)
	if err != nil {
		return h.fail(c, domain.MessageFailedAddComment, err, "")
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *commentHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)

	if err := h.commentService.DeleteComment(c.Context(), userID, c.Params("id")); err != nil {
		return h.fail(c, domain.MessageFailedDeleteComment, err, "")
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}

func (h *commentHandler) LikeComment(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)

	res, err := h.likeService.Like(c.Context(), userID, domain.TargetComment, c.Params("id"))
	if err != nil {
		return h.fail(c, domain.MessageFailedLike, err, "")
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLike)
}

func (h *commentHandler) UnlikeComment(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)

	res, err := h.likeService.Unlike(c.Context(), userID, domain.TargetComment, c.Params("id"))
	if err != nil {
		return h.fail(c, domain.MessageFailedUnlike, err, "")
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUnlike)
}
