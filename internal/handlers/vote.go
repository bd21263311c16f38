package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"soclone/internal/middleware"
	"soclone/internal/models"
	"soclone/internal/services"
	"soclone/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VoteHandler struct {
	rating *services.RatingService
}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{
		rating: services.NewRatingService(),
	}
}

// Rate records a usefulness vote. Route: POST /vote/:type/:id with form
// field useful=1|0; :type picks question or answer. Lands back on the
// question the target belongs to.
func (h *VoteHandler) Rate(c *gin.Context) {
	user, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	currentUser := user.(*models.User)

	target, err := services.ParseVoteTarget(c.Param("type"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	targetID := utils.StringToUint(c.Param("id"))
	useful := c.PostForm("useful") == "1"

	questionID, err := h.rating.Rate(target, targetID, currentUser.ID, useful)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RenderError(c, http.StatusNotFound, "Nothing to vote on here")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/questions/%d", questionID))
}
