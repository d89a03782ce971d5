package controllers

import (
	"net/http"
	"time"

	"github.com/pjoshi23/CalorIQ/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

type GoalInput struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (gc *GoalController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	goal, err := gc.Goals.Get(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load goals"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

func (gc *GoalController) Upsert(c *gin.Context) {
	uid := c.GetUint("userID")

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := gc.Goals.Upsert(uid, input.Calories, input.Protein, input.Carbs, input.Fat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save goals"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

func (gc *GoalController) Progress(c *gin.Context) {
	uid := c.GetUint("userID")

	goal, progress, err := gc.Goals.Progress(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal, "progress": progress})
}
