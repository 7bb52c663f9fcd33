package recipe

import (
	"context"
	"errors"
	"strings"
	"time"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/internal/utils/storage"
	"Go-Recipe-Share/pkg/comment"
	"Go-Recipe-Share/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	hotRecipeLimit = 3
	topCookLimit   = 3
)

type (
	RecipeService interface {
		AddRecipe(ctx context.Context, accountID string, req domain.AddRecipeRequest, photo *domain.Photo) (domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, recipeID string, viewerID string) (domain.RecipeDetail, error)
		SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) (domain.SearchResponse, error)
		DeleteRecipe(ctx context.Context, accountID string, recipeID string) error
		GetHome(ctx context.Context, category string) (domain.HomeResponse, error)
		ListByOwner(ctx context.Context, accountID string) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		userRepository   user.UserRepository
		commentService   comment.CommentService
		photos           storage.PhotoStore
		now              func() time.Time
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	userRepository user.UserRepository,
	commentService comment.CommentService,
	photos storage.PhotoStore,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
		commentService:   commentService,
		photos:           photos,
		now:              time.Now,
	}
}

// ParseIngredients splits free text on commas and newlines, dropping
// blank entries.
func ParseIngredients(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// NormalizeCategory maps "" and "all" to no filter and rejects anything
// outside the fixed category set.
func NormalizeCategory(category string) (string, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "all" {
		return "", nil
	}
	if !domain.IsCategory(category) {
		return "", domain.ErrInvalidCategory
	}
	return category, nil
}

func (s *recipeService) AddRecipe(ctx context.Context, accountID string, req domain.AddRecipeRequest, photo *domain.Photo) (domain.RecipeResponse, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrAccountNotFound
	}

	description := strings.TrimSpace(req.Description)
	instruction := strings.TrimSpace(req.Instruction)
	if description == "" || instruction == "" {
		return domain.RecipeResponse{}, domain.ErrMissingFields
	}
	if !domain.IsCategory(req.Category) {
		return domain.RecipeResponse{}, domain.ErrInvalidCategory
	}
	ingredients := ParseIngredients(req.Ingredient)
	if len(ingredients) == 0 {
		return domain.RecipeResponse{}, domain.ErrNoIngredients
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		Description: description,
		Ingredients: ingredients,
		Instruction: instruction,
		Category:    req.Category,
	}

	if photo != nil {
		ref, err := s.photos.Save(ctx, "recipes", photo.Data, photo.Mime)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.Photo = ref
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, ownerID); err != nil {
		if recipe.Photo != "" {
			_ = s.photos.Delete(ctx, recipe.Photo)
		}
		return domain.RecipeResponse{}, err
	}
	return ToRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string, viewerID string) (domain.RecipeDetail, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	detail := domain.RecipeDetail{
		Recipe:          ToRecipeResponse(recipe),
		CurrentCategory: recipe.Category,
	}

	if recipe.Owner != nil {
		profile, err := s.userRepository.GetProfileByAccountID(ctx, recipe.Owner.AccountID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, err
		}
		if profile != nil {
			p := user.ToProfileResponse(profile)
			detail.Creator = &p
		}
	}

	if detail.Recipe.Likes, err = s.recipeRepository.CountLikes(ctx, recipe.ID); err != nil {
		return domain.RecipeDetail{}, err
	}

	viewer := comment.ParseViewer(viewerID)
	if viewer != uuid.Nil {
		if detail.HasLiked, err = s.recipeRepository.HasLiked(ctx, recipe.ID, viewer); err != nil {
			return domain.RecipeDetail{}, err
		}
	}

	if detail.Comments, err = s.commentService.ListByRecipe(ctx, recipe.ID.String(), viewerID); err != nil {
		return domain.RecipeDetail{}, err
	}
	return detail, nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) (domain.SearchResponse, error) {
	category, err := NormalizeCategory(req.Category)
	if err != nil {
		return domain.SearchResponse{}, err
	}
	query := strings.TrimSpace(req.Query)

	recipes, err := s.recipeRepository.SearchRecipes(ctx, query, category)
	if err != nil {
		return domain.SearchResponse{}, err
	}
	return domain.SearchResponse{
		Query:    query,
		Category: category,
		Recipes:  ToRecipeResponses(recipes),
	}, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, accountID string, recipeID string) error {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.Owner == nil || recipe.Owner.AccountID.String() != accountID {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe.ID); err != nil {
		return err
	}
	if recipe.Photo != "" {
		_ = s.photos.Delete(ctx, recipe.Photo)
	}
	return nil
}

func (s *recipeService) GetHome(ctx context.Context, category string) (domain.HomeResponse, error) {
	category, err := NormalizeCategory(category)
	if err != nil {
		return domain.HomeResponse{}, err
	}

	if category != "" {
		recipes, err := s.recipeRepository.SearchRecipes(ctx, "", category)
		if err != nil {
			return domain.HomeResponse{}, err
		}
		return domain.HomeResponse{
			Category:   category,
			HotRecipes: []domain.RecipeResponse{},
			TopCooks:   []domain.CookSummary{},
			Recipes:    ToRecipeResponses(recipes),
		}, nil
	}

	day := s.now().UTC().Unix() / int64((24 * time.Hour).Seconds())
	daily, err := s.recipeRepository.DailyRecipe(ctx, day)
	if err != nil {
		return domain.HomeResponse{}, err
	}
	hot, err := s.recipeRepository.HotRecipes(ctx, hotRecipeLimit)
	if err != nil {
		return domain.HomeResponse{}, err
	}
	cooks, err := s.userRepository.TopCooks(ctx, topCookLimit)
	if err != nil {
		return domain.HomeResponse{}, err
	}

	res := domain.HomeResponse{
		HotRecipes: ToRecipeResponses(hot),
		TopCooks:   cooks,
	}
	if daily != nil {
		d := ToRecipeResponse(daily)
		res.DailyRecipe = &d
	}
	return res, nil
}

func (s *recipeService) ListByOwner(ctx context.Context, accountID string) ([]domain.RecipeResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	recipes, err := s.recipeRepository.ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRecipeResponses(recipes), nil
}

func ToRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := recipe.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Description: recipe.Description,
		Ingredients: ingredients,
		Instruction: recipe.Instruction,
		Category:    recipe.Category,
		Photo:       recipe.Photo,
		Likes:       recipe.Likes,
		CreatedAt:   recipe.CreatedAt,
	}
}

func ToRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	out := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, ToRecipeResponse(r))
	}
	return out
}
