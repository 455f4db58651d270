package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glimpse-social/api-go/models"
	"github.com/glimpse-social/api-go/services"
)

// PostResponse is a post plus its on-read like count.
type PostResponse struct {
	models.Post
	Likes int64 `json:"likes"`
}

// CommentResponse carries a comment with its reply subtree. Children is
// filled recursively by buildCommentTree, one level per Children call.
type CommentResponse struct {
	ID        uint              `json:"id"`
	PostID    uint              `json:"postId"`
	Profile   models.Profile    `json:"profile"`
	ParentID  *uint             `json:"parentId"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"createdAt"`
	Children  []CommentResponse `json:"children"`
}

func buildCommentTree(svc *services.CommentService, comments []models.PostComment) ([]CommentResponse, error) {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		children, err := svc.Children(comment.ID)
		if err != nil {
			return nil, err
		}
		childTree, err := buildCommentTree(svc, children)
		if err != nil {
			return nil, err
		}
		out = append(out, CommentResponse{
			ID:        comment.ID,
			PostID:    comment.PostID,
			Profile:   comment.Profile,
			ParentID:  comment.ParentID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
			Children:  childTree,
		})
	}
	return out, nil
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "Action not allowed"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
