package repository

import (
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// AddEcoPoints increments atomically so concurrent correct answers never
// lose an update.
func (r *UserRepository) AddEcoPoints(userID uint, points int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("eco_points", gorm.Expr("eco_points + ?", points)).
		Error
}

// FindTopByEcoPoints ranks by eco points descending; ties break on
// ascending id so the order is stable.
func (r *UserRepository) FindTopByEcoPoints(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("eco_points DESC, id ASC").Limit(limit).Find(&users).Error
	return users, err
}

// FindTopStudents is the student-dashboard leaderboard: same ranking,
// students only.
func (r *UserRepository) FindTopStudents(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ?", model.Student).
		Order("eco_points DESC, id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}
