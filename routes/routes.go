package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"forum-api/config"
	"forum-api/controllers"
	"forum-api/middleware"
	"forum-api/services"
	"forum-api/storage"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	images := storage.NewImageStore(cfg.UploadDir)

	// Services
	postService := services.NewPostService(db, images)
	interactionService := services.NewInteractionService(db)
	commentService := services.NewCommentService(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	postController := controllers.NewPostController(postService, interactionService, images)
	commentController := controllers.NewCommentController(commentService)
	userController := controllers.NewUserController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Uploaded images are served as static files; the database stores the
	// relative /uploads/... path.
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(120, 20))

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Public read endpoints
	api.GET("/posts", postController.GetPosts)
	api.GET("/posts/:id", postController.GetPost)
	api.GET("/comments/:postId", commentController.GetComments)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		posts := protected.Group("/posts")
		{
			posts.POST("", postController.CreatePost)
			posts.DELETE("/:id", postController.DeletePost)
			posts.POST("/:id/like", postController.LikePost)
			posts.POST("/:id/favorite", postController.FavoritePost)
			posts.POST("/upload-image", postController.UploadImage)
		}

		comments := protected.Group("/comments")
		{
			comments.POST("/:postId", commentController.CreateComment)
			comments.DELETE("/:commentId", commentController.DeleteComment)
		}

		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
			users.GET("/me/posts", postController.GetMyPosts)
			users.GET("/me/favorites", postController.GetMyFavorites)
			users.GET("/:userId/likes", postController.GetUserLikes)
			users.GET("/:userId/favorites", postController.GetUserFavorites)
		}
	}
}
