package controllers

import (
	"net/http"
	"strconv"

	"github.com/pjoshi23/CalorIQ/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type UserController struct {
	Auth     *services.AuthService
	Profiles *services.ProfileService
}

func NewUserController(auth *services.AuthService, profiles *services.ProfileService) *UserController {
	return &UserController{Auth: auth, Profiles: profiles}
}

// Me resolves the caller's profile, creating it on first sign-in. A resolver
// failure is a transient "no profile yet" state for the client, not a 5xx.
func (uc *UserController) Me(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := uc.Auth.FindUser(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	profile, err := uc.Profiles.Resolve(user)
	if err != nil {
		log.WithError(err).WithField("user_id", uid).Error("profile resolve failed")
		c.JSON(http.StatusOK, gin.H{"profile": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type UpdateProfileInput struct {
	Bio        string `json:"bio"`
	PictureURL string `json:"profile_picture"`
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := uc.Profiles.Update(uid, input.Bio, input.PictureURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Get returns another user's profile by id.
func (uc *UserController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	profile, err := uc.Profiles.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// List backs the Discover screen: every profile, ordered by display name.
func (uc *UserController) List(c *gin.Context) {
	profiles, err := uc.Profiles.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": profiles})
}

// Following returns the profiles the caller follows.
func (uc *UserController) Following(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := uc.Profiles.Get(uid)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"users": []any{}})
		return
	}

	profiles, err := uc.Profiles.FollowingProfiles(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load following"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": profiles})
}
