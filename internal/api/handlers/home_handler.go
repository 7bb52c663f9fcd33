package handlers

import (
	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/internal/api/presenters"
	"Go-Recipe-Share/pkg/jwt"
	"Go-Recipe-Share/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	HomeHandler interface {
		Home(c *fiber.Ctx) error
		Search(c *fiber.Ctx) error
	}

	homeHandler struct {
		responder
		recipeService recipe.RecipeService
	}
)

func NewHomeHandler(recipeService recipe.RecipeService, validator *validator.Validate, flashes jwt.JWTService, logger *zap.Logger) HomeHandler {
	return &homeHandler{
		responder:     newResponder(flashes, validator, logger),
		recipeService: recipeService,
	}
}

func (h *homeHandler) Home(c *fiber.Ctx) error {
	res, err := h.recipeService.GetHome(c.Context(), c.Query("category"))
	if err != nil {
		return h.fail(c, domain.MessageFailedGetHome, err, "")
	}
	res.Flash = presenters.Flash(c)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHome)
}

func (h *homeHandler) Search(c *fiber.Ctx) error {
	req := domain.SearchRecipesRequest{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}

	res, err := h.recipeService.SearchRecipes(c.Context(), req)
	if err != nil {
		return h.fail(c, domain.MessageFailedGetRecipes, err, "")
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}
