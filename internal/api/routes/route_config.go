package routes

import (
	"Go-Recipe-Share/internal/api/handlers"
	"Go-Recipe-Share/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	HomeHandler    handlers.HomeHandler
	UserHandler    handlers.UserHandler
	RecipeHandler  handlers.RecipeHandler
	CommentHandler handlers.CommentHandler
	ProfileHandler handlers.ProfileHandler
	AdminHandler   handlers.AdminHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.FlashMiddleware())
	c.App.Use(c.Middleware.IdentityMiddleware())
	c.GuestRoute()
	c.Home()
	c.User()
	c.Recipes()
	c.Comments()
	c.Profile()
	c.Admin()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Home() {
	c.App.Get("/", c.HomeHandler.Home)
	c.App.Get("/search", c.HomeHandler.Search)
}

func (c *Config) User() {
	user := c.App.Group("/users")
	{
		user.Get("/register", c.UserHandler.RegisterPage)
		user.Post("/register", c.UserHandler.Register)
		user.Get("/login", c.UserHandler.LoginPage)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/logout", c.Middleware.RequireAuthenticated(), c.UserHandler.Logout)
	}
}

func (c *Config) Recipes() {
	auth := c.Middleware.RequireAuthenticated()
	recipes := c.App.Group("/recipes")

	// /add must be registered before /:id
	recipes.Get("/add", auth, c.RecipeHandler.AddRecipePage)
	recipes.Post("/add", auth, c.RecipeHandler.AddRecipe)

	recipes.Post("/like/:id", auth, c.RecipeHandler.LikeRecipe)
	recipes.Post("/unlike/:id", auth, c.RecipeHandler.UnlikeRecipe)
	recipes.Post("/:id/like", auth, c.RecipeHandler.LikeRecipe)
	recipes.Post("/:id/unlike", auth, c.RecipeHandler.UnlikeRecipe)

	recipes.Get("/:id", c.RecipeHandler.GetRecipe)
}

func (c *Config) Comments() {
	comments := c.App.Group("/comments", c.Middleware.RequireAuthenticated())
	comments.Post("/:id/like", c.CommentHandler.LikeComment)
	comments.Post("/:id/unlike", c.CommentHandler.UnlikeComment)
	comments.Post("/:recipeId", c.CommentHandler.AddComment)
	comments.Delete("/:id", c.CommentHandler.DeleteComment)
}

func (c *Config) Profile() {
	profile := c.App.Group("/profile", c.Middleware.RequireAuthenticated())
	profile.Get("", c.ProfileHandler.GetProfile)
	profile.Post("/update", c.ProfileHandler.UpdateProfile)
	profile.Post("/update-photo", c.ProfileHandler.UpdatePhoto)
	profile.Post("/delete-recipe/:id", c.ProfileHandler.DeleteRecipe)
	profile.Post("/delete-comment/:id", c.ProfileHandler.DeleteComment)
}

func (c *Config) Admin() {
	admin := c.App.Group("/admin", c.Middleware.RequireAdmin())
	admin.Get("", c.AdminHandler.ListUsers)
	admin.Post("/delete/:id", c.AdminHandler.DeleteUser)
	admin.Post("/reset-password/:id", c.AdminHandler.ResetPassword)
}
