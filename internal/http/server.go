package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/http/handlers"
	"github.com/saradorri/safecasino/internal/http/middleware"
	"github.com/saradorri/safecasino/internal/infrastructure/auth"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

// Server represents the HTTP server
type Server struct {
	router        *gin.Engine
	jwtService    auth.JWTService
	authHandler   *handlers.AuthHandler
	userHandler   *handlers.UserHandler
	gameHandler   *handlers.GameHandler
	reviewHandler *handlers.ReviewHandler
	adminHandler  *handlers.AdminHandler
	errorHandler  *middleware.ErrorHandler
	port          string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	gameHandler *handlers.GameHandler,
	reviewHandler *handlers.ReviewHandler,
	adminHandler *handlers.AdminHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:        router,
		jwtService:    jwtService,
		authHandler:   authHandler,
		userHandler:   userHandler,
		gameHandler:   gameHandler,
		reviewHandler: reviewHandler,
		adminHandler:  adminHandler,
		errorHandler:  errorHandler,
		port:          port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", s.authHandler.Register)
			authRoutes.POST("/login", s.authHandler.Login)
			authRoutes.GET("/verify-email", s.authHandler.VerifyEmail)
			authRoutes.POST("/resend-verification", s.authHandler.ResendVerification)
			authRoutes.POST("/forgot-password", s.authHandler.ForgotPassword)
			authRoutes.POST("/reset-password", s.authHandler.ResetPassword)
		}

		// Public catalog surface. Highlight lists live under /casino so
		// that /games/:id stays the only child of /games in the route tree.
		casinoRoutes := v1.Group("/casino")
		{
			casinoRoutes.GET("/dashboard", s.gameHandler.Dashboard)
			casinoRoutes.GET("/popular", s.gameHandler.PopularGames)
			casinoRoutes.GET("/new", s.gameHandler.NewGames)
		}
		v1.GET("/categories", s.gameHandler.ListCategories)
		v1.GET("/providers", s.gameHandler.ListProviders)
		gameRoutes := v1.Group("/games")
		{
			gameRoutes.GET("", s.gameHandler.ListGames)
			gameRoutes.GET("/:id", s.gameHandler.GetGame)
			gameRoutes.GET("/:id/rating", s.reviewHandler.GameRatingStats)
			gameRoutes.GET("/:id/reviews", middleware.OptionalJWTMiddleware(s.jwtService), s.reviewHandler.ListGameReviews)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("/profile", s.userHandler.GetProfile)
				userRoutes.PUT("/profile", s.userHandler.UpdateProfile)
				userRoutes.GET("/balance", s.userHandler.GetBalance)
				userRoutes.POST("/balance/add", s.userHandler.AddBalance)
				userRoutes.POST("/balance/withdraw", s.userHandler.WithdrawBalance)
				userRoutes.GET("/reviews", s.userHandler.MyReviews)
			}

			protected.POST("/games/:id/play", s.gameHandler.RecordPlay)
			protected.POST("/games/:id/reviews", s.reviewHandler.CreateReview)
			protected.PUT("/reviews/:id", s.reviewHandler.EditReview)
			protected.DELETE("/reviews/:id", s.reviewHandler.DeleteReview)

			staff := protected.Group("/")
			staff.Use(middleware.RequireRoles(domain.RoleAdmin, domain.RoleModerator))
			{
				staff.GET("/reviews", s.reviewHandler.ListAllReviews)
				staff.POST("/reviews/:id/approve", s.reviewHandler.ApproveReview)
			}

			admin := protected.Group("/")
			admin.Use(middleware.RequireRoles(domain.RoleAdmin))
			{
				admin.POST("/games", s.gameHandler.CreateGame)
				admin.PUT("/games/:id", s.gameHandler.UpdateGame)
				admin.DELETE("/games/:id", s.gameHandler.DeleteGame)
				admin.POST("/categories", s.gameHandler.CreateCategory)
				admin.PUT("/categories/:id", s.gameHandler.UpdateCategory)
				admin.DELETE("/categories/:id", s.gameHandler.DeleteCategory)
				admin.POST("/providers", s.gameHandler.CreateProvider)
				admin.PUT("/providers/:id", s.gameHandler.UpdateProvider)
				admin.DELETE("/providers/:id", s.gameHandler.DeleteProvider)

				adminUsers := admin.Group("/admin")
				{
					adminUsers.GET("/users", s.adminHandler.ListAccounts)
					adminUsers.GET("/users/:id", s.adminHandler.GetAccount)
					adminUsers.PUT("/users/:id", s.adminHandler.UpdateAccount)
					adminUsers.DELETE("/users/:id", s.adminHandler.DeleteAccount)
					adminUsers.POST("/users/:id/lock", s.adminHandler.LockAccount)
					adminUsers.POST("/users/:id/unlock", s.adminHandler.UnlockAccount)
					adminUsers.GET("/users/:id/roles", s.adminHandler.AccountRoles)
					adminUsers.POST("/users/:id/roles", s.adminHandler.AssignRole)
					adminUsers.DELETE("/users/:id/roles/:role", s.adminHandler.RemoveRole)
					adminUsers.GET("/roles", s.adminHandler.ListRoles)
					adminUsers.GET("/stats/users", s.adminHandler.AccountStats)
					adminUsers.GET("/stats/roles", s.adminHandler.RoleStats)
				}
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
