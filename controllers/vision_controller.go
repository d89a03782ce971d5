package controllers

import (
	"net/http"

	"github.com/pjoshi23/CalorIQ/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type VisionController struct {
	Vision *services.VisionService
	Rek    *services.RekognitionService // optional naming fallback
}

func NewVisionController(vision *services.VisionService, rek *services.RekognitionService) *VisionController {
	return &VisionController{Vision: vision, Rek: rek}
}

type AnalyzeInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// Analyze runs the vision model over a food photo. On failure the client
// still gets a zeroed nutrition payload with an error string, so the meal
// can be logged or posted regardless.
func (vc *VisionController) Analyze(c *gin.Context) {
	var input AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := vc.Vision.Analyze(input.ImageBase64)
	if err != nil {
		log.WithError(err).Warn("food analysis failed")

		fallback := services.FoodAnalysis{Name: "Unknown Food", ServingSize: "unknown"}
		if vc.Rek != nil {
			if labels, lerr := vc.Rek.DetectFoodLabels(input.ImageBase64); lerr == nil && len(labels) > 0 {
				fallback.Name = labels[0]
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"name":         fallback.Name,
			"calories":     0,
			"protein":      0,
			"carbs":        0,
			"fat":          0,
			"serving_size": fallback.ServingSize,
			"confidence":   0,
			"error":        err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
