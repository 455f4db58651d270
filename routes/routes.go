package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/glimpse-social/api-go/controllers"
	"github.com/glimpse-social/api-go/middleware"
	"github.com/glimpse-social/api-go/services"
	"github.com/glimpse-social/api-go/storage"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, media storage.MediaStore) {
	// Initialize services
	postService := services.NewPostService(db, media)
	likeService := services.NewLikeService(db)
	commentService := services.NewCommentService(db)
	storyService := services.NewStoryService(db, media)

	// Initialize controllers
	postController := controllers.NewPostController(postService, likeService)
	interactionController := controllers.NewInteractionController(likeService, commentService)
	storyController := controllers.NewStoryController(storyService)

	// Protected routes; token issuance lives in the accounts service
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupPostRoutes(protected, postController)
		SetupInteractionRoutes(protected, interactionController)
		SetupStoryRoutes(protected, storyController)
	}
}
