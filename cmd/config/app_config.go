package config

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/internal/api/handlers"
	"Go-Recipe-Share/internal/api/presenters"
	"Go-Recipe-Share/internal/api/routes"
	"Go-Recipe-Share/internal/middleware"
	"Go-Recipe-Share/internal/utils"
	"Go-Recipe-Share/internal/utils/mailing"
	"Go-Recipe-Share/internal/utils/storage"
	"Go-Recipe-Share/pkg/admin"
	"Go-Recipe-Share/pkg/comment"
	"Go-Recipe-Share/pkg/jwt"
	"Go-Recipe-Share/pkg/like"
	"Go-Recipe-Share/pkg/recipe"
	"Go-Recipe-Share/pkg/session"
	"Go-Recipe-Share/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bodyLimit admits a full-size photo plus the rest of the form.
const bodyLimit = 6 * 1024 * 1024

// NewApp wires repositories, services, handlers and routes. A nil
// sessionStorage keeps sessions in memory.
func NewApp(db *gorm.DB, cfg utils.Config, log *zap.Logger, sessionStorage fiber.Storage) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler(log),
	})
	validator := utils.Validate

	app.Use(recover.New())

	// setting up logging and limiter
	output, err := accessLog(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     output,
	}))

	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	// utils
	photos, err := storage.NewPhotoStore(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	mailer := mailing.NewMailer(mailing.LoadMailConfig(cfg))

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	commentRepository := comment.NewCommentRepository(db)
	likeRepository := like.NewLikeRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret)
	sessionService := session.NewSessionService(sessionStorage, cfg.CookieSecure)
	userService := user.NewUserService(userRepository, photos)
	commentService := comment.NewCommentService(commentRepository, userRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, commentService, photos)
	likeService := like.NewLikeService(likeRepository)
	adminService := admin.NewAdminService(adminRepository, userRepository, mailer, cfg.AdminNotifyEmail, log)

	middlewares := middleware.NewMiddleware(sessionService, userService, jwtService, log)

	// Handler
	homeHandler := handlers.NewHomeHandler(recipeService, validator, jwtService, log)
	userHandler := handlers.NewUserHandler(userService, sessionService, validator, jwtService, log)
	recipeHandler := handlers.NewRecipeHandler(recipeService, likeService, validator, jwtService, log)
	commentHandler := handlers.NewCommentHandler(commentService, likeService, validator, jwtService, log)
	profileHandler := handlers.NewProfileHandler(userService, recipeService, commentService, likeService, validator, jwtService, log)
	adminHandler := handlers.NewAdminHandler(adminService, validator, jwtService, log)

	// routes
	routesConfig := routes.Config{
		App:            app,
		HomeHandler:    homeHandler,
		UserHandler:    userHandler,
		RecipeHandler:  recipeHandler,
		CommentHandler: commentHandler,
		ProfileHandler: profileHandler,
		AdminHandler:   adminHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// accessLog opens the request log file, or stdout when none is configured.
func accessLog(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
}

// errorHandler renders errors that escape handlers (unknown routes, body
// limit, recovered panics) in the usual envelope.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return presenters.ErrorResponse(c, ferr.Code, ferr.Message, err)
		}
		log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalError,
			domain.NewError(domain.KindInternal, domain.MessageInternalError))
	}
}
