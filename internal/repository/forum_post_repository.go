package repository

import (
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"gorm.io/gorm"
)

type ForumPostRepository struct {
	DB *gorm.DB
}

func NewForumPostRepository(db *gorm.DB) *ForumPostRepository {
	return &ForumPostRepository{DB: db}
}

func (r *ForumPostRepository) Create(post *model.ForumPost) error {
	return r.DB.Create(post).Error
}

// FindAll returns every post, most recent first.
func (r *ForumPostRepository) FindAll() ([]model.ForumPost, error) {
	var posts []model.ForumPost
	err := r.DB.Preload("User").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
