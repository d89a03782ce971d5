package services

import (
	"github.com/pjoshi23/CalorIQ/models"

	"gorm.io/gorm"
)

type PostService struct {
	db     *gorm.DB
	events *Events
}

func NewPostService(db *gorm.DB, events *Events) *PostService {
	return &PostService{db: db, events: events}
}

type CreatePostInput struct {
	Image    string  `json:"image"`
	FoodName string  `json:"food_name" binding:"required"`
	Caption  string  `json:"caption"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Create inserts the post with the author's current display data snapshotted
// onto it and bumps the author's post count in the same transaction.
func (s *PostService) Create(profile *models.Profile, in CreatePostInput) (*models.Post, error) {
	post := models.Post{
		UserID:         profile.UserID,
		AuthorName:     profile.DisplayName,
		AuthorUsername: profile.Username,
		AuthorPicture:  profile.PictureURL,
		ImageURL:       in.Image,
		FoodName:       in.FoodName,
		Caption:        in.Caption,
		Calories:       in.Calories,
		Protein:        in.Protein,
		Carbs:          in.Carbs,
		Fat:            in.Fat,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return tx.Model(&models.Profile{}).
			Where("user_id = ?", profile.UserID).
			UpdateColumn("post_count", gorm.Expr("post_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	s.events.PostCreated(post.UserID, post.ID)

	// fresh post, nobody has liked it yet
	post.LikerIDs = []uint{}
	return &post, nil
}

// ListAll returns the global post stream, newest first, with like state
// computed for the viewer.
func (s *PostService) ListAll(viewerID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	if err := s.decorateLikes(posts, viewerID); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByUser returns one author's posts, newest first.
func (s *PostService) ListByUser(authorID, viewerID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Where("user_id = ?", authorID).Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	if err := s.decorateLikes(posts, viewerID); err != nil {
		return nil, err
	}
	return posts, nil
}

// FilterFeed projects the global post stream down to posts authored by
// followed users, preserving upstream order. Pure; no pagination or ranking.
func FilterFeed(posts []models.Post, following []uint) []models.Post {
	followed := make(map[uint]struct{}, len(following))
	for _, id := range following {
		followed[id] = struct{}{}
	}
	out := []models.Post{}
	for _, p := range posts {
		if _, ok := followed[p.UserID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Feed returns the viewer's feed. A nil profile (still resolving) yields an
// empty feed rather than an error.
func (s *PostService) Feed(profile *models.Profile) ([]models.Post, error) {
	if profile == nil {
		return []models.Post{}, nil
	}
	posts, err := s.ListAll(profile.UserID)
	if err != nil {
		return nil, err
	}
	return FilterFeed(posts, profile.Following), nil
}

// decorateLikes fills the computed liker sets for a batch of posts with a
// single query; like count is just the cardinality of the set.
func (s *PostService) decorateLikes(posts []models.Post, viewerID uint) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	var likes []models.PostLike
	if err := s.db.Where("post_id IN ?", ids).Find(&likes).Error; err != nil {
		return err
	}

	byPost := make(map[uint][]uint, len(posts))
	for _, l := range likes {
		byPost[l.PostID] = append(byPost[l.PostID], l.UserID)
	}

	for i := range posts {
		likers := byPost[posts[i].ID]
		if likers == nil {
			likers = []uint{}
		}
		posts[i].LikerIDs = likers
		posts[i].LikeCount = len(likers)
		posts[i].Liked = false
		for _, id := range likers {
			if id == viewerID {
				posts[i].Liked = true
				break
			}
		}
	}
	return nil
}
