package services

import (
	"errors"
	"strings"
	"time"

	"github.com/pjoshi23/CalorIQ/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// DeriveNames produces the display name and "@username" for an account. The
// username is always the email local-part; the display name falls back to
// the capitalized local-part ("User" when no email is known).
func DeriveNames(displayName, email string) (string, string) {
	local := "user"
	if email != "" {
		local = strings.Split(email, "@")[0]
	}
	if local == "" {
		local = "user"
	}
	if displayName == "" {
		displayName = strings.ToUpper(local[:1]) + local[1:]
	}
	return displayName, "@" + local
}

// Resolve returns the profile for a signed-in user, creating a default one
// on lookup miss and migrating legacy placeholder rows in place. The
// migration is idempotent: once rewritten, the placeholder condition no
// longer matches.
func (s *ProfileService) Resolve(user *models.User) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("user_id = ?", user.ID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		name, username := DeriveNames(user.DisplayName, user.Email)
		profile = models.Profile{
			UserID:      user.ID,
			DisplayName: name,
			Username:    username,
			Email:       user.Email,
			PictureURL:  user.PictureURL,
			Bio:         "",
			PostCount:   0,
			JoinedAt:    time.Now(),
		}
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return s.decorate(&profile)
	}
	if err != nil {
		return nil, err
	}

	if profile.DisplayName == "User" || profile.DisplayName == "user" {
		name, username := DeriveNames(user.DisplayName, user.Email)
		profile.DisplayName = name
		profile.Username = username
		if err := s.db.Save(&profile).Error; err != nil {
			return nil, err
		}
		log.WithField("user_id", user.ID).Info("migrated legacy placeholder profile")
	}

	return s.decorate(&profile)
}

// Get returns another user's profile with its follower/following id sets.
func (s *ProfileService) Get(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return s.decorate(&profile)
}

// List returns every profile ordered by display name (the Discover view).
func (s *ProfileService) List() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.Order("display_name ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	for i := range profiles {
		if _, err := s.decorate(&profiles[i]); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

// FollowingProfiles loads the profiles this profile follows.
func (s *ProfileService) FollowingProfiles(profile *models.Profile) ([]models.Profile, error) {
	if len(profile.Following) == 0 {
		return []models.Profile{}, nil
	}
	var profiles []models.Profile
	err := s.db.
		Where("user_id IN ?", profile.Following).
		Order("display_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if _, err := s.decorate(&profiles[i]); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func (s *ProfileService) Update(userID uint, bio, pictureURL string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	profile.Bio = bio
	if pictureURL != "" {
		profile.PictureURL = pictureURL
	}
	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return s.decorate(&profile)
}

// decorate fills the computed follower/following id sets from the follows
// table. Empty sets come back as empty slices, not nil, so JSON stays [].
func (s *ProfileService) decorate(profile *models.Profile) (*models.Profile, error) {
	followers := []uint{}
	if err := s.db.Model(&models.Follow{}).
		Where("followee_id = ?", profile.UserID).
		Pluck("follower_id", &followers).Error; err != nil {
		return nil, err
	}
	following := []uint{}
	if err := s.db.Model(&models.Follow{}).
		Where("follower_id = ?", profile.UserID).
		Pluck("followee_id", &following).Error; err != nil {
		return nil, err
	}
	profile.Followers = followers
	profile.Following = following
	return profile, nil
}
