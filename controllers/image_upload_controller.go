package controllers

import (
	"net/http"

	"github.com/pjoshi23/CalorIQ/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	Kind        string `json:"kind"` // "avatars" | "meals" | "posts"
}

// UploadImage stores a base64 photo in S3 and hands back its public URL.
func UploadImage(c *gin.Context) {
	var input UploadImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	prefix := input.Kind
	switch prefix {
	case "avatars", "meals", "posts":
	default:
		prefix = "meals"
	}

	url, err := utils.UploadBase64Image(input.ImageBase64, prefix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
