package controllers

import (
	"net/http"
	"strconv"

	"github.com/pjoshi23/CalorIQ/services"

	"github.com/gin-gonic/gin"
)

type SocialController struct {
	Social *services.SocialService
}

func NewSocialController(social *services.SocialService) *SocialController {
	return &SocialController{Social: social}
}

func (sc *SocialController) Follow(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := sc.Social.Follow(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to follow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "following"})
}

func (sc *SocialController) Unfollow(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := sc.Social.Unfollow(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unfollow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}
