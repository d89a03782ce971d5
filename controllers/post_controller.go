package controllers

import (
	"net/http"
	"strconv"

	"github.com/pjoshi23/CalorIQ/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type PostController struct {
	Posts    *services.PostService
	Profiles *services.ProfileService
	Social   *services.SocialService
}

func NewPostController(posts *services.PostService, profiles *services.ProfileService, social *services.SocialService) *PostController {
	return &PostController{Posts: posts, Profiles: profiles, Social: social}
}

func (pc *PostController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := pc.Profiles.Get(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "profile not found"})
		return
	}

	post, err := pc.Posts.Create(profile, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Feed returns posts from followed users. Before the caller's profile has
// resolved, the feed is empty rather than an error.
func (pc *PostController) Feed(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := pc.Profiles.Get(uid)
	if err != nil {
		log.WithError(err).WithField("user_id", uid).Warn("feed requested before profile resolved")
		c.JSON(http.StatusOK, gin.H{"posts": []any{}})
		return
	}

	posts, err := pc.Posts.Feed(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ByUser lists one author's posts (profile screen).
func (pc *PostController) ByUser(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	posts, err := pc.Posts.ListByUser(uint(id), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Like toggles the caller's like on a post.
func (pc *PostController) Like(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	liked, err := pc.Social.ToggleLike(uid, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
