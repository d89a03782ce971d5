package services_test

import (
	"testing"

	"github.com/pjoshi23/CalorIQ/models"
	"github.com/pjoshi23/CalorIQ/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveNames(t *testing.T) {
	cases := []struct {
		displayName, email string
		wantName, wantUser string
	}{
		{"", "jane@x.com", "Jane", "@jane"},
		{"Jane Doe", "jane@x.com", "Jane Doe", "@jane"},
		{"", "", "User", "@user"},
		{"", "bob.smith@example.org", "Bob.smith", "@bob.smith"},
	}
	for _, tc := range cases {
		name, username := services.DeriveNames(tc.displayName, tc.email)
		assert.Equal(t, tc.wantName, name, "email=%q", tc.email)
		assert.Equal(t, tc.wantUser, username, "email=%q", tc.email)
	}
}

func TestResolveCreatesDefaultProfile(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProfileService(db)
	user := newTestUser(t, db, "jane@x.com", "")

	profile, err := svc.Resolve(user)
	require.NoError(t, err)

	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, "Jane", profile.DisplayName)
	assert.Equal(t, "@jane", profile.Username)
	assert.Equal(t, "jane@x.com", profile.Email)
	assert.Empty(t, profile.Bio)
	assert.Zero(t, profile.PostCount)
	assert.False(t, profile.JoinedAt.IsZero())
	assert.Empty(t, profile.Followers)
	assert.Empty(t, profile.Following)

	// persisted, not just synthesized
	var count int64
	db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolveMigratesLegacyPlaceholder(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProfileService(db)
	user := newTestUser(t, db, "jane@x.com", "")

	require.NoError(t, db.Create(&models.Profile{
		UserID:      user.ID,
		DisplayName: "user",
		Username:    "@old",
		Email:       user.Email,
	}).Error)

	profile, err := svc.Resolve(user)
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.DisplayName)
	assert.Equal(t, "@jane", profile.Username)

	var stored models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&stored).Error)
	assert.Equal(t, "Jane", stored.DisplayName, "migration must persist")

	// a second resolve no longer matches the placeholder condition
	again, err := svc.Resolve(user)
	require.NoError(t, err)
	assert.Equal(t, "Jane", again.DisplayName)
	assert.Equal(t, "@jane", again.Username)
}

func TestResolveLeavesRealNamesAlone(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProfileService(db)
	user := newTestUser(t, db, "jane@x.com", "")

	require.NoError(t, db.Create(&models.Profile{
		UserID:      user.ID,
		DisplayName: "Janet",
		Username:    "@janet",
	}).Error)

	profile, err := svc.Resolve(user)
	require.NoError(t, err)
	assert.Equal(t, "Janet", profile.DisplayName)
	assert.Equal(t, "@janet", profile.Username)
}

func TestProfileUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProfileService(db)
	user := newTestUser(t, db, "jane@x.com", "Jane")
	newTestProfile(t, db, user)

	profile, err := svc.Update(user.ID, "eats well", "https://cdn/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "eats well", profile.Bio)
	assert.Equal(t, "https://cdn/x.jpg", profile.PictureURL)

	// empty picture keeps the old one
	profile, err = svc.Update(user.ID, "new bio", "")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.jpg", profile.PictureURL)
}

func TestListOrdersByDisplayName(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProfileService(db)

	for _, u := range []struct{ email, name string }{
		{"zed@x.com", "Zed"},
		{"amy@x.com", "Amy"},
		{"mia@x.com", "Mia"},
	} {
		newTestProfile(t, db, newTestUser(t, db, u.email, u.name))
	}

	profiles, err := svc.List()
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "Amy", profiles[0].DisplayName)
	assert.Equal(t, "Mia", profiles[1].DisplayName)
	assert.Equal(t, "Zed", profiles[2].DisplayName)
}
