package services

import (
	"errors"
	"strings"

	"github.com/pjoshi23/CalorIQ/models"
	"github.com/pjoshi23/CalorIQ/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	db       *gorm.DB
	profiles *ProfileService
}

func NewAuthService(db *gorm.DB, profiles *ProfileService) *AuthService {
	return &AuthService{db: db, profiles: profiles}
}

// Register creates the auth record and its profile. Error messages are
// user-facing alert text.
func (s *AuthService) Register(email, password, displayName, pictureURL string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:       email,
		Password:    hashed,
		DisplayName: displayName,
		PictureURL:  pictureURL,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	// Profile creation failure is not fatal to signup; the resolver will
	// create it lazily on the next sign-in.
	if _, err := s.profiles.Resolve(&user); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("failed to create profile at signup")
	}

	return &user, nil
}

// Login checks credentials and mints a bearer token.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *AuthService) FindUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
