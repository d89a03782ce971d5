package services

import (
	"github.com/pjoshi23/CalorIQ/models"

	"gorm.io/gorm"
)

// Events fans mutation notifications out to the realtime hub and, for
// engagement events, to push. A nil *Events is valid and drops everything,
// which keeps service tests free of wiring.
type Events struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService
}

func NewEvents(db *gorm.DB, hub *RealtimeHub, push *PushService) *Events {
	return &Events{db: db, hub: hub, push: push}
}

func (e *Events) MealChanged(userID uint, kind string, mealID uint) {
	if e == nil || e.hub == nil {
		return
	}
	e.hub.Broadcast(userID, map[string]any{"kind": kind, "meal_id": mealID})
}

// PostCreated tells the author's followers their feed changed.
func (e *Events) PostCreated(authorID, postID uint) {
	if e == nil || e.hub == nil {
		return
	}
	followers := []uint{}
	_ = e.db.Model(&models.Follow{}).
		Where("followee_id = ?", authorID).
		Pluck("follower_id", &followers).Error
	e.hub.BroadcastMany(followers, map[string]any{"kind": "post.created", "post_id": postID})
}

func (e *Events) PostLiked(likerID, authorID, postID uint) {
	if e == nil || likerID == authorID {
		return
	}
	if e.hub != nil {
		e.hub.Broadcast(authorID, map[string]any{
			"kind": "post.liked", "post_id": postID, "liker_id": likerID,
		})
	}
	if e.push != nil {
		e.push.PushToUser(authorID, "New like", e.actorName(likerID)+" liked your post", map[string]string{
			"kind": "post.liked",
		})
	}
}

func (e *Events) Followed(followerID, followeeID uint) {
	if e == nil || followerID == followeeID {
		return
	}
	if e.hub != nil {
		e.hub.Broadcast(followeeID, map[string]any{
			"kind": "profile.followed", "follower_id": followerID,
		})
	}
	if e.push != nil {
		e.push.PushToUser(followeeID, "New follower", e.actorName(followerID)+" started following you", map[string]string{
			"kind": "profile.followed",
		})
	}
}

func (e *Events) actorName(userID uint) string {
	var p models.Profile
	if err := e.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return "Someone"
	}
	return p.DisplayName
}
