package handlers

import (
	"net/http"
	"soclone/internal/db"
	"soclone/internal/models"

	"github.com/gin-gonic/gin"
)

type TagHandler struct{}

func NewTagHandler() *TagHandler {
	return &TagHandler{}
}

// ListTags shows all tags, newest first.
func (h *TagHandler) ListTags(c *gin.Context) {
	var tags []models.Tag
	db.DB.Order("created_at DESC").Find(&tags)

	Render(c, http.StatusOK, "tag/list.html", gin.H{
		"Tags":   tags,
		"Title":  "Tags",
		"Active": "tags",
	})
}
