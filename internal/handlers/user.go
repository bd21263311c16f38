package handlers

import (
	"net/http"

	"soclone/internal/db"
	"soclone/internal/models"
	"soclone/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile shows a user's public page with activity counts.
func (h *UserHandler) Profile(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	var questionCount, answerCount, voteCount int64
	db.DB.Model(&models.Question{}).Where("user_id = ?", user.ID).Count(&questionCount)
	db.DB.Model(&models.Answer{}).Where("user_id = ?", user.ID).Count(&answerCount)
	db.DB.Model(&models.QuestionVote{}).Where("user_id = ?", user.ID).Count(&voteCount)

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"Title":         user.Username,
		"ProfileUser":   user,
		"QuestionCount": questionCount,
		"AnswerCount":   answerCount,
		"VoteCount":     voteCount,
	})
}
