package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glimpse-social/api-go/services"
	"github.com/glimpse-social/api-go/utils"
)

type InteractionController struct {
	Likes    *services.LikeService
	Comments *services.CommentService
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	Parent  *uint  `json:"parent"`
}

func NewInteractionController(likes *services.LikeService, comments *services.CommentService) *InteractionController {
	return &InteractionController{Likes: likes, Comments: comments}
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Description Toggles like status for a post; repeated calls alternate state
// @Tags interactions
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/like [post]
func (ic *InteractionController) ToggleLike(c *gin.Context) {
	profile := utils.GetProfile(c)
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	action, err := ic.Likes.Toggle(postID, profile.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"action":  action,
		"message": "Like " + string(action) + " successfully",
	})
}

// ListLikes godoc
// @Summary List likes on a post
// @Tags interactions
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.PostLike
// @Router /posts/{id}/likes [get]
func (ic *InteractionController) ListLikes(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	likes, err := ic.Likes.ListLikes(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

// ListComments godoc
// @Summary List top-level comments on a post with their reply trees
// @Tags interactions
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} CommentResponse
// @Router /posts/{id}/comments [get]
func (ic *InteractionController) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := ic.Comments.TopLevel(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	tree, err := buildCommentTree(ic.Comments, comments)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tree)
}

// CreateComment godoc
// @Summary Comment on a post
// @Description Creates a comment, optionally as a reply to another comment
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param comment body CreateCommentRequest true "Comment"
// @Success 201 {object} models.PostComment
// @Router /posts/{id}/comments [post]
func (ic *InteractionController) CreateComment(c *gin.Context) {
	profile := utils.GetProfile(c)
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := ic.Comments.Create(postID, profile.ProfileID, req.Content, req.Parent)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary Delete a comment and its replies
// @Description Allowed for the post owner or the comment author
// @Tags interactions
// @Produce json
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/comments/{commentId} [delete]
func (ic *InteractionController) DeleteComment(c *gin.Context) {
	profile := utils.GetProfile(c)
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	if err := ic.Comments.Delete(postID, commentID, profile.ProfileID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
