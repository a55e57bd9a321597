package service

import (
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/repository"
)

type CommunityService struct {
	PostRepo *repository.ForumPostRepository
}

func NewCommunityService(postRepo *repository.ForumPostRepository) *CommunityService {
	return &CommunityService{PostRepo: postRepo}
}

type PostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

func (s *CommunityService) CreatePost(userID uint, req PostRequest) (*model.ForumPost, error) {
	post := &model.ForumPost{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *CommunityService) GetPosts() ([]model.ForumPost, error) {
	return s.PostRepo.FindAll()
}
