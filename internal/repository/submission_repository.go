package repository

import (
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.Submission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.DB.Preload("Challenge").First(&submission, id).Error
	return &submission, err
}

func (r *SubmissionRepository) FindByUser(userID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.Preload("Challenge").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) FindPending() ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.Preload("User").Preload("Challenge").
		Where("status = ?", model.SubmissionPending).
		Order("created_at ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) CountPending() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).
		Where("status = ?", model.SubmissionPending).
		Count(&count).Error
	return count, err
}
