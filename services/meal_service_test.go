package services_test

import (
	"testing"
	"time"

	"github.com/pjoshi23/CalorIQ/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMealAssignsLogDateOnce(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMealService(db, nil)
	user := newTestUser(t, db, "jane@x.com", "Jane")

	at := time.Date(2026, 8, 12, 19, 30, 0, 0, time.Local)
	meal, err := svc.Log(user.ID, services.LogMealInput{
		Name:     "Chicken Bowl",
		Calories: 620,
		Protein:  45,
		MealType: "Dinner",
		LoggedAt: &at,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-12", meal.LogDate)
	assert.Equal(t, "7:30 PM", meal.LoggedAt)

	// still the creation date after a reload
	meals, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "2026-08-12", meals[0].LogDate)
}

func TestLogMealDefaultsToServerClock(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMealService(db, nil)
	user := newTestUser(t, db, "jane@x.com", "Jane")

	meal, err := svc.Log(user.ID, services.LogMealInput{Name: "Snack"})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), meal.LogDate)
}

func TestListReturnsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMealService(db, nil)
	user := newTestUser(t, db, "jane@x.com", "Jane")

	for i, name := range []string{"first", "second", "third"} {
		_, err := svc.Log(user.ID, services.LogMealInput{Name: name})
		require.NoError(t, err)
		// sqlite timestamps have second resolution; force distinct created_at
		require.NoError(t, db.Exec(
			"UPDATE logged_meals SET created_at = ? WHERE name = ?",
			time.Now().Add(time.Duration(i)*time.Minute), name,
		).Error)
	}

	meals, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, "third", meals[0].Name)
	assert.Equal(t, "first", meals[2].Name)
}

func TestDeleteIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMealService(db, nil)
	owner := newTestUser(t, db, "owner@x.com", "Owner")
	other := newTestUser(t, db, "other@x.com", "Other")

	meal, err := svc.Log(owner.ID, services.LogMealInput{Name: "Lunch"})
	require.NoError(t, err)

	assert.Error(t, svc.Delete(other.ID, meal.ID))
	require.NoError(t, svc.Delete(owner.ID, meal.ID))
	assert.Error(t, svc.Delete(owner.ID, meal.ID), "already gone")
}
