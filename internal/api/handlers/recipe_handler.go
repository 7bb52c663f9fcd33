package handlers

import (
	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/internal/api/presenters"
	"Go-Recipe-Share/internal/middleware"
	"Go-Recipe-Share/internal/utils/storage"
	"Go-Recipe-Share/pkg/jwt"
	"Go-Recipe-Share/pkg/like"
	"Go-Recipe-Share/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	RecipeHandler interface {
		AddRecipePage(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		LikeRecipe(c *fiber.Ctx) error
		UnlikeRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		responder
		recipeService recipe.RecipeService
		likeService   like.LikeService
	}
)

func NewRecipeHandler(
	recipeService recipe.RecipeService,
	likeService like.LikeService,
	validator *validator.Validate,
	flashes jwt.JWTService,
	logger *zap.Logger,
) RecipeHandler {
	return &recipeHandler{
		responder:     newResponder(flashes, validator, logger),
		recipeService: recipeService,
		likeService:   likeService,
	}
}

func (h *recipeHandler) AddRecipePage(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.AddRecipePage{
		Categories: domain.Categories,
		Flash:      presenters.Flash(c),
	}, fiber.StatusOK, "add recipe")
}

func (h *recipeHandler) AddRecipe(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)
	req := new(domain.AddRecipeRequest)

	if err := h.parse(c, req); err != nil {
		return h.fail(c, domain.MessageFailedAddRecipe, err, "/recipes/add")
	}

	photo, err := formPhoto(c)
	if err != nil {
		return h.fail(c, domain.MessageFailedAddRecipe, err, "/recipes/add")
	}

	res, err := h.recipeService.AddRecipe(c.Context(), userID, *req, photo)
	if err != nil {
		return h.fail(c, domain.MessageFailedAddRecipe, err, "/recipes/add")
	}

	return h.succeed(c, res, fiber.StatusCreated, domain.MessageSuccessAddRecipe, "/")
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipe(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return h.fail(c, domain.MessageFailedGetRecipeDetail, err, "")
	}
	res.Flash = presenters.Flash(c)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) LikeRecipe(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)

	res, err := h.likeService.Like(c.Context(), userID, domain.TargetRecipe, c.Params("id"))
	if err != nil {
		return h.fail(c, domain.MessageFailedLike, err, "")
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLike)
}

func (h *recipeHandler) UnlikeRecipe(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)

	res, err := h.likeService.Unlike(c.Context(), userID, domain.TargetRecipe, c.Params("id"))
	if err != nil {
		return h.fail(c, domain.MessageFailedUnlike, err, "")
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUnlike)
}

// formPhoto reads the optional "photo" upload. A request without one,
// or one that is not multipart, yields nil.
func formPhoto(c *fiber.Ctx) (*domain.Photo, error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		return nil, nil
	}
	data, mime, err := storage.ReadImage(fh)
	if err != nil {
		return nil, err
	}
	return &domain.Photo{Data: data, Mime: mime}, nil
}
