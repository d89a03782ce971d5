package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/pjoshi23/CalorIQ/config"
	"github.com/pjoshi23/CalorIQ/models"
	"github.com/pjoshi23/CalorIQ/services"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// one named in-memory database per test so parallel tests don't share state
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email, displayName string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Password: "x", DisplayName: displayName}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newTestProfile(t *testing.T, db *gorm.DB, user *models.User) *models.Profile {
	t.Helper()

	profile, err := services.NewProfileService(db).Resolve(user)
	require.NoError(t, err)
	return profile
}

func mealOn(userID uint, name, logDate string, calories float64) models.LoggedMeal {
	return models.LoggedMeal{
		UserID:   userID,
		Name:     name,
		LogDate:  logDate,
		Calories: calories,
	}
}

func mustParseDay(t *testing.T, day string) time.Time {
	t.Helper()

	d, err := time.ParseInLocation("2006-01-02", day, time.Local)
	require.NoError(t, err)
	return d
}
