package services

import (
	"errors"

	"github.com/pjoshi23/CalorIQ/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SocialService struct {
	db     *gorm.DB
	events *Events
}

func NewSocialService(db *gorm.DB, events *Events) *SocialService {
	return &SocialService{db: db, events: events}
}

// Follow records follower -> followee. A repeat follow hits the unique
// (follower_id, followee_id) index and is a no-op; one row carries both
// sides of the relationship so the two views can never drift apart.
// Self-follow is not rejected here.
func (s *SocialService) Follow(followerID, followeeID uint) error {
	var target models.Profile
	if err := s.db.Where("user_id = ?", followeeID).First(&target).Error; err != nil {
		return err
	}

	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Follow{FollowerID: followerID, FolloweeID: followeeID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		s.events.Followed(followerID, followeeID)
	}
	return nil
}

// Unfollow removes the edge. Unfollowing someone you never followed is a
// no-op, not an error.
func (s *SocialService) Unfollow(followerID, followeeID uint) error {
	return s.db.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

// ToggleLike flips the caller's membership in a post's liker set and reports
// the resulting state. Membership check and write run in one transaction, so
// a double-tap converges on set semantics instead of racing.
func (s *SocialService) ToggleLike(userID, postID uint) (bool, error) {
	var liked bool
	var authorID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}
		authorID = post.UserID

		var existing models.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		switch {
		case err == nil:
			liked = false
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			return tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.PostLike{PostID: postID, UserID: userID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}

	if liked {
		s.events.PostLiked(userID, authorID, postID)
	}
	return liked, nil
}
