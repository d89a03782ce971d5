package services_test

import (
	"testing"

	"github.com/pjoshi23/CalorIQ/models"
	"github.com/pjoshi23/CalorIQ/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostSnapshotsAuthorAndBumpsCount(t *testing.T) {
	db := newTestDB(t)
	posts := services.NewPostService(db, nil)
	profiles := services.NewProfileService(db)

	author := newTestProfile(t, db, newTestUser(t, db, "jane@x.com", "Jane"))

	post, err := posts.Create(author, services.CreatePostInput{
		FoodName: "Avocado Toast",
		Caption:  "brunch",
		Calories: 320,
		Protein:  9,
		Carbs:    30,
		Fat:      18,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", post.AuthorName)
	assert.Equal(t, "@jane", post.AuthorUsername)
	assert.Empty(t, post.LikerIDs)

	got, err := profiles.Get(author.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PostCount)

	// the snapshot does not follow later profile edits
	require.NoError(t, db.Model(&models.Profile{}).
		Where("user_id = ?", author.UserID).
		Update("display_name", "Janet").Error)

	listed, err := posts.ListByUser(author.UserID, author.UserID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Jane", listed[0].AuthorName)
}

func TestFilterFeed(t *testing.T) {
	stream := []models.Post{
		{UserID: 3, FoodName: "newest"},
		{UserID: 2, FoodName: "middle"},
		{UserID: 3, FoodName: "oldest"},
		{UserID: 7, FoodName: "stranger"},
	}

	assert.Empty(t, services.FilterFeed(stream, nil))

	feed := services.FilterFeed(stream, []uint{3, 2})
	require.Len(t, feed, 3)
	// upstream order preserved
	assert.Equal(t, "newest", feed[0].FoodName)
	assert.Equal(t, "middle", feed[1].FoodName)
	assert.Equal(t, "oldest", feed[2].FoodName)
}

func TestFeedOnlyShowsFollowedAuthors(t *testing.T) {
	db := newTestDB(t)
	posts := services.NewPostService(db, nil)
	social := services.NewSocialService(db, nil)
	profiles := services.NewProfileService(db)

	viewer := newTestProfile(t, db, newTestUser(t, db, "viewer@x.com", "Viewer"))
	friend := newTestProfile(t, db, newTestUser(t, db, "friend@x.com", "Friend"))
	stranger := newTestProfile(t, db, newTestUser(t, db, "other@x.com", "Other"))

	_, err := posts.Create(friend, services.CreatePostInput{FoodName: "Pasta"})
	require.NoError(t, err)
	_, err = posts.Create(stranger, services.CreatePostInput{FoodName: "Salad"})
	require.NoError(t, err)

	// nothing followed yet
	feed, err := posts.Feed(viewer)
	require.NoError(t, err)
	assert.Empty(t, feed)

	require.NoError(t, social.Follow(viewer.UserID, friend.UserID))
	viewer, err = profiles.Get(viewer.UserID)
	require.NoError(t, err)

	feed, err = posts.Feed(viewer)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Pasta", feed[0].FoodName)
}

func TestFeedWithoutProfileIsEmpty(t *testing.T) {
	db := newTestDB(t)
	posts := services.NewPostService(db, nil)

	feed, err := posts.Feed(nil)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestListAllDecoratesLikes(t *testing.T) {
	db := newTestDB(t)
	posts := services.NewPostService(db, nil)
	social := services.NewSocialService(db, nil)

	author := newTestProfile(t, db, newTestUser(t, db, "author@x.com", "Author"))
	viewer := newTestProfile(t, db, newTestUser(t, db, "viewer@x.com", "Viewer"))

	post, err := posts.Create(author, services.CreatePostInput{FoodName: "Ramen"})
	require.NoError(t, err)

	_, err = social.ToggleLike(viewer.UserID, post.ID)
	require.NoError(t, err)

	fromViewer, err := posts.ListAll(viewer.UserID)
	require.NoError(t, err)
	require.Len(t, fromViewer, 1)
	assert.Equal(t, 1, fromViewer[0].LikeCount)
	assert.Equal(t, []uint{viewer.UserID}, fromViewer[0].LikerIDs)
	assert.True(t, fromViewer[0].Liked)

	fromAuthor, err := posts.ListAll(author.UserID)
	require.NoError(t, err)
	assert.False(t, fromAuthor[0].Liked)
}
