package service

import (
	"testing"
	"time"

	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	db := testDB(t)
	s := NewCommunityService(repository.NewForumPostRepository(db))
	user := createUser(t, db, "alice", model.Student, 0)

	post, err := s.CreatePost(user.ID, PostRequest{Title: "Composting tips", Content: "Start small."})
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, user.ID, post.UserID)
}

func TestGetPostsNewestFirst(t *testing.T) {
	db := testDB(t)
	s := NewCommunityService(repository.NewForumPostRepository(db))
	user := createUser(t, db, "alice", model.Student, 0)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		post := &model.ForumPost{
			UserID:  user.ID,
			Title:   title,
			Content: "...",
		}
		post.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, db.Create(post).Error)
	}

	posts, err := s.GetPosts()
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Title)
	assert.Equal(t, "middle", posts[1].Title)
	assert.Equal(t, "oldest", posts[2].Title)
	// Author comes preloaded for display.
	assert.Equal(t, "alice", posts[0].User.Name)
}
