package database

import (
	"fmt"
	"log"

	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/config"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedDemoData(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Module{},
		&model.Quiz{},
		&model.Challenge{},
		&model.Submission{},
		&model.ForumPost{},
	)
}

// SeedDemoData inserts a starter data set when the user table is empty:
// demo accounts, three modules with their quizzes, and two challenges.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		return string(h)
	}

	users := []model.User{
		{Name: "Admin User", Email: "admin@ecoquest.com", Password: hash("admin123"), Role: model.Admin},
		{Name: "Jane Teacher", Email: "teacher@ecoquest.com", Password: hash("teacher123"), Role: model.Teacher},
		{Name: "Alice Student", Email: "alice@ecoquest.com", Password: hash("student123"), Role: model.Student, EcoPoints: 50},
		{Name: "Bob Student", Email: "bob@ecoquest.com", Password: hash("student123"), Role: model.Student, EcoPoints: 120},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	modules := []model.Module{
		{Title: "Recycling Basics", Description: "Learn the basics of recycling.", Content: "Content for Recycling Basics."},
		{Title: "Water Conservation", Description: "Tips and tricks to save water.", Content: "Content for Water Conservation."},
		{Title: "Energy Saving", Description: "Reduce energy consumption at home.", Content: "Content for Energy Saving."},
	}
	if err := db.Create(&modules).Error; err != nil {
		return err
	}

	quizzes := []model.Quiz{
		{
			ModuleID:      modules[0].ID,
			Question:      "Which material is recyclable?",
			Options:       `["Plastic","Food waste","Ceramics"]`,
			CorrectAnswer: "Plastic",
			Points:        10,
		},
		{
			ModuleID:      modules[1].ID,
			Question:      "Turn off the tap while brushing. True or False?",
			Options:       `["True","False"]`,
			CorrectAnswer: "True",
			Points:        10,
		},
	}
	if err := db.Create(&quizzes).Error; err != nil {
		return err
	}

	challenges := []model.Challenge{
		{Title: "Recycle at Home", Description: "Upload a photo of your recycling efforts.", Points: 20},
		{Title: "Water Saving Challenge", Description: "Submit a screenshot of your water meter saving.", Points: 15},
	}
	return db.Create(&challenges).Error
}
