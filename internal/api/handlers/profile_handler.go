package handlers

import (
	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/internal/api/presenters"
	"Go-Recipe-Share/internal/middleware"
	"Go-Recipe-Share/internal/utils/storage"
	"Go-Recipe-Share/pkg/comment"
	"Go-Recipe-Share/pkg/jwt"
	"Go-Recipe-Share/pkg/like"
	"Go-Recipe-Share/pkg/recipe"
	"Go-Recipe-Share/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	ProfileHandler interface {
		GetProfile(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
		UpdatePhoto(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
	}

	profileHandler struct {
		responder
		userService    user.UserService
		recipeService  recipe.RecipeService
		commentService comment.CommentService
		likeService    like.LikeService
	}
)

func NewProfileHandler(
	userService user.UserService,
	recipeService recipe.RecipeService,
	commentService comment.CommentService,
	likeService like.LikeService,
	validator *validator.Validate,
	flashes jwt.JWTService,
	logger *zap.Logger,
) ProfileHandler {
	return &profileHandler{
		responder:      newResponder(flashes, validator, logger),
		userService:    userService,
		recipeService:  recipeService,
		commentService: commentService,
		likeService:    likeService,
	}
}

func (h *profileHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)
	ctx := c.Context()

	profile, err := h.userService.GetProfile(ctx, userID)
	if err != nil {
		return h.fail(c, domain.MessageFailedGetProfile, err, "")
	}
	recipes, err := h.recipeService.ListByOwner(ctx, userID)
	if err != nil {
		return h.fail(c, domain.MessageFailedGetProfile, err, "")
	}
	comments, err := h.commentService.ListByAccount(ctx, userID)
	if err != nil {
		return h.fail(c, domain.MessageFailedGetProfile, err, "")
	}
	likes, err := h.likeService.ListByAccount(ctx, userID)
	if err != nil {
		return h.fail(c, domain.MessageFailedGetProfile, err, "")
	}

	return presenters.SuccessResponse(c, domain.ProfilePageResponse{
		Profile:  profile,
		Recipes:  recipes,
		Comments: comments,
		Likes:    likes,
		Flash:    presenters.Flash(c),
	}, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *profileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)
	req := new(domain.UpdateProfileRequest)

	if err := h.parse(c, req); err != nil {
		return h.fail(c, domain.MessageFailedUpdateProfile, err, "/profile")
	}

	res, err := h.userService.UpdateProfile(c.Context(), userID, *req)
	if err != nil {
		return h.fail(c, domain.MessageFailedUpdateProfile, err, "/profile")
	}
	return h.succeed(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProfile, "/profile")
}

func (h *profileHandler) UpdatePhoto(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)

	fh, err := c.FormFile("photo")
	if err != nil {
		return h.fail(c, domain.MessageFailedUpdatePhoto, domain.NewValidationError("photo is required"), "/profile")
	}
	data, mime, err := storage.ReadImage(fh)
	if err != nil {
		return h.fail(c, domain.MessageFailedUpdatePhoto, err, "/profile")
	}

	res, err := h.userService.UpdateProfilePhoto(c.Context(), userID, data, mime)
	if err != nil {
		return h.fail(c, domain.MessageFailedUpdatePhoto, err, "/profile")
	}
	return h.succeed(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePhoto, "/profile")
}

func (h *profileHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)

	if err := h.recipeService.DeleteRecipe(c.Context(), userID, c.Params("id")); err != nil {
		return h.fail(c, domain.MessageFailedDeleteRecipe, err, "/profile")
	}
	return h.succeed(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe, "/profile")
}

func (h *profileHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)

	if err := h.commentService.DeleteComment(c.Context(), userID, c.Params("id")); err != nil {
		return h.fail(c, domain.MessageFailedDeleteComment, err, "/profile")
	}
	return h.succeed(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment, "/profile")
}
