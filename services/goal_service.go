package services

import (
	"errors"
	"time"

	"github.com/pjoshi23/CalorIQ/models"

	"gorm.io/gorm"
)

type GoalService struct {
	db    *gorm.DB
	meals *MealService
}

func NewGoalService(db *gorm.DB, meals *MealService) *GoalService {
	return &GoalService{db: db, meals: meals}
}

// Get returns the user's daily macro targets, zero-valued when none are set.
func (s *GoalService) Get(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DailyGoal{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) Upsert(userID uint, calories, protein, carbs, fat float64) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		}
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat
	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// Progress sums today's meals against the goal. Percent caps at 1.
func (s *GoalService) Progress(userID uint, now time.Time) (*models.DailyGoal, map[string]any, error) {
	goal, err := s.Get(userID)
	if err != nil {
		return nil, nil, err
	}

	meals, err := s.meals.List(userID)
	if err != nil {
		return goal, nil, err
	}
	totals := SumMacros(TodayMeals(meals, now))

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	progress := map[string]any{
		"calories": map[string]float64{"consumed": totals.Calories, "goal": goal.Calories, "percent": pct(totals.Calories, goal.Calories)},
		"protein":  map[string]float64{"consumed": totals.Protein, "goal": goal.Protein, "percent": pct(totals.Protein, goal.Protein)},
		"carbs":    map[string]float64{"consumed": totals.Carbs, "goal": goal.Carbs, "percent": pct(totals.Carbs, goal.Carbs)},
		"fat":      map[string]float64{"consumed": totals.Fat, "goal": goal.Fat, "percent": pct(totals.Fat, goal.Fat)},
	}

	return goal, progress, nil
}
