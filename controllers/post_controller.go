package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glimpse-social/api-go/services"
	"github.com/glimpse-social/api-go/utils"
)

type PostController struct {
	Posts *services.PostService
	Likes *services.LikeService
}

type UpdatePostRequest struct {
	Caption string `json:"caption" binding:"required"`
}

func NewPostController(posts *services.PostService, likes *services.LikeService) *PostController {
	return &PostController{Posts: posts, Likes: likes}
}

// ListPosts godoc
// @Summary List all posts
// @Description Returns every post with its media and like count
// @Tags posts
// @Produce json
// @Success 200 {array} PostResponse
// @Router /posts [get]
func (pc *PostController) ListPosts(c *gin.Context) {
	posts, err := pc.Posts.ListPosts()
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		count, err := pc.Likes.Count(post.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		responses = append(responses, PostResponse{Post: post, Likes: count})
	}

	c.JSON(http.StatusOK, responses)
}

// CreatePost godoc
// @Summary Create a new post
// @Description Creates a post with caption and media files, all-or-nothing
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param caption formData string true "Post caption"
// @Param post_media formData file false "Media files"
// @Success 201 {object} models.Post
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	profile := utils.GetProfile(c)
	caption := c.PostForm("caption")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var uploads []services.MediaUpload
	for _, header := range form.File["post_media"] {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()

		uploads = append(uploads, services.MediaUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
	}

	post, err := pc.Posts.CreatePost(c.Request.Context(), profile.ProfileID, caption, uploads)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} PostResponse
// @Router /posts/{id} [get]
func (pc *PostController) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := pc.Posts.GetPost(id)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := pc.Likes.Count(post.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PostResponse{Post: *post, Likes: count})
}

// UpdatePost godoc
// @Summary Update a post's caption
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Router /posts/{id} [patch]
func (pc *PostController) UpdatePost(c *gin.Context) {
	profile := utils.GetProfile(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.Posts.UpdatePost(id, profile.ProfileID, req.Caption)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a post and everything referencing it
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	profile := utils.GetProfile(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := pc.Posts.DeletePost(c.Request.Context(), id, profile.ProfileID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
