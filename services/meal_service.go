package services

import (
	"time"

	"github.com/pjoshi23/CalorIQ/models"

	"gorm.io/gorm"
)

type MealService struct {
	db     *gorm.DB
	events *Events
}

func NewMealService(db *gorm.DB, events *Events) *MealService {
	return &MealService{db: db, events: events}
}

type LogMealInput struct {
	Name     string  `json:"name" binding:"required"`
	Image    string  `json:"image"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	MealType string  `json:"meal_type"`
	// LoggedAt carries the device's local wall-clock time (RFC3339 with
	// offset). The server clock is only a fallback.
	LoggedAt *time.Time `json:"logged_at"`
}

// Log creates a meal entry. The log date and display time are fixed here,
// once, from the device's local time; the today/week rollups key on that
// date string ever after.
func (s *MealService) Log(userID uint, in LogMealInput) (*models.LoggedMeal, error) {
	at := time.Now()
	if in.LoggedAt != nil {
		at = *in.LoggedAt
	}

	meal := models.LoggedMeal{
		UserID:   userID,
		Name:     in.Name,
		ImageURL: in.Image,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		LoggedAt: at.Format("3:04 PM"),
		LogDate:  at.Format(isoDate),
		MealType: in.MealType,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}

	s.events.MealChanged(userID, "meal.created", meal.ID)
	return &meal, nil
}

// List returns the user's full meal log, newest first. Rollups consume this
// order as-is.
func (s *MealService) List(userID uint) ([]models.LoggedMeal, error) {
	var meals []models.LoggedMeal
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

// Delete removes a meal the user owns. There is no update path: edit is a UI
// affordance without a backing contract.
func (s *MealService) Delete(userID, mealID uint) error {
	res := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.LoggedMeal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.events.MealChanged(userID, "meal.deleted", mealID)
	return nil
}
