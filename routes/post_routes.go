package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/glimpse-social/api-go/controllers"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController) {
	posts := protected.Group("/posts")
	{
		posts.GET("", postController.ListPosts)
		posts.POST("", postController.CreatePost)
		posts.GET("/:id", postController.GetPost)
		posts.PATCH("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
	}
}
