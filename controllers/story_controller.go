package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glimpse-social/api-go/services"
	"github.com/glimpse-social/api-go/utils"
)

type StoryController struct {
	Stories *services.StoryService
}

func NewStoryController(stories *services.StoryService) *StoryController {
	return &StoryController{Stories: stories}
}

// CreateStory godoc
// @Summary Post a story
// @Description Uploads a story file; the story expires after 24 hours
// @Tags stories
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Story file"
// @Success 201 {object} models.Story
// @Router /stories [post]
func (sc *StoryController) CreateStory(c *gin.Context) {
	profile := utils.GetProfile(c)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Story file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	story, err := sc.Stories.Create(c.Request.Context(), profile.ProfileID, services.MediaUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, story)
}

// ListStories godoc
// @Summary List live stories
// @Description Expired stories are never returned
// @Tags stories
// @Produce json
// @Success 200 {array} models.Story
// @Router /stories [get]
func (sc *StoryController) ListStories(c *gin.Context) {
	stories, err := sc.Stories.ListLive()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stories)
}

// ViewStory godoc
// @Summary Record a story view
// @Tags stories
// @Produce json
// @Param id path int true "Story ID"
// @Success 200 {object} map[string]interface{}
// @Router /stories/{id}/view [post]
func (sc *StoryController) ViewStory(c *gin.Context) {
	profile := utils.GetProfile(c)
	storyID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := sc.Stories.View(storyID, profile.ProfileID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Story view recorded"})
}
