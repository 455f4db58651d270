package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/glimpse-social/api-go/controllers"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	posts := protected.Group("/posts")
	{
		posts.POST("/:id/like", interactionController.ToggleLike)
		posts.GET("/:id/likes", interactionController.ListLikes)
		posts.GET("/:id/comments", interactionController.ListComments)
		posts.POST("/:id/comments", interactionController.CreateComment)
		posts.DELETE("/:id/comments/:commentId", interactionController.DeleteComment)
	}
}
