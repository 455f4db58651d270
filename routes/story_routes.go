package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/glimpse-social/api-go/controllers"
)

func SetupStoryRoutes(protected *gin.RouterGroup, storyController *controllers.StoryController) {
	stories := protected.Group("/stories")
	{
		stories.GET("", storyController.ListStories)
		stories.POST("", storyController.CreateStory)
		stories.POST("/:id/view", storyController.ViewStory)
	}
}
