package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/config"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Module{},
		&model.Quiz{},
		&model.Challenge{},
		&model.Submission{},
		&model.ForumPost{},
	))
	return db
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
		Upload: config.UploadConfig{
			AllowedExtensions: []string{".png", ".jpg", ".jpeg", ".gif"},
		},
	}
}

func createUser(t *testing.T, db *gorm.DB, name string, role model.UserRole, points int) *model.User {
	t.Helper()
	user := &model.User{
		Name:      name,
		Email:     name + "@ecoquest.com",
		Password:  "x",
		Role:      role,
		EcoPoints: points,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
