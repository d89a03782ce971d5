package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pjoshi23/CalorIQ/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

func (mc *MealController) Log(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.Log(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log meal"})
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	meals, err := mc.Meals.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (mc *MealController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mc.Meals.Delete(uid, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal removed"})
}

// Today returns today's meals plus their macro totals.
func (mc *MealController) Today(c *gin.Context) {
	uid := c.GetUint("userID")

	meals, err := mc.Meals.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meals"})
		return
	}

	today := services.TodayMeals(meals, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"meals":  today,
		"totals": services.SumMacros(today),
	})
}

func (mc *MealController) Recent(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	meals, err := mc.Meals.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": services.RecentMeals(meals, limit)})
}

// Week returns the current ISO week (Monday..Sunday) as date-keyed meal
// lists with per-day totals.
func (mc *MealController) Week(c *gin.Context) {
	uid := c.GetUint("userID")

	meals, err := mc.Meals.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meals"})
		return
	}

	week := services.WeekMeals(meals, time.Now())
	totals := make(map[string]services.MacroTotals, len(week))
	for date, dayMeals := range week {
		totals[date] = services.SumMacros(dayMeals)
	}

	c.JSON(http.StatusOK, gin.H{"week": week, "totals": totals})
}
