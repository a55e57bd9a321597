package service

import (
	"testing"

	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/repository"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLearningService(t *testing.T) (*LearningService, *gorm.DB) {
	db := testDB(t)
	s := NewLearningService(
		repository.NewModuleRepository(db),
		repository.NewQuizRepository(db),
		repository.NewUserRepository(db),
	)
	return s, db
}

func createQuiz(t *testing.T, db *gorm.DB, answer string, points int) *model.Quiz {
	t.Helper()
	module := &model.Module{Title: "Water Conservation"}
	require.NoError(t, db.Create(module).Error)
	quiz := &model.Quiz{
		ModuleID:      module.ID,
		Question:      "Turn off the tap while brushing. True or False?",
		CorrectAnswer: answer,
		Points:        points,
	}
	require.NoError(t, db.Create(quiz).Error)
	return quiz
}

func userPoints(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var user model.User
	require.NoError(t, db.First(&user, id).Error)
	return user.EcoPoints
}

func TestSubmitAnswer(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		given       string
		points      int
		wantCorrect bool
		wantAward   int
	}{
		{"exact match", "True", "True", 10, true, 10},
		{"case insensitive", "True", "true", 10, true, 10},
		{"surrounding whitespace", "True", " true ", 10, true, 10},
		{"wrong answer", "True", "False", 10, false, 0},
		{"near miss gets nothing", "Plastic", "Plastics", 10, false, 0},
		{"unset points default to ten", "True", "true", 0, true, 10},
		{"custom points", "Plastic", "plastic", 25, true, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, db := newLearningService(t)
			user := createUser(t, db, "alice", model.Student, 50)
			quiz := createQuiz(t, db, tt.answer, tt.points)

			result, err := s.SubmitAnswer(user.ID, quiz.ID, tt.given)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCorrect, result.Correct)
			assert.Equal(t, tt.wantAward, result.Awarded)
			assert.Equal(t, 50+tt.wantAward, userPoints(t, db, user.ID))
		})
	}
}

func TestSubmitAnswerWrongLeavesPointsAlone(t *testing.T) {
	s, db := newLearningService(t)
	user := createUser(t, db, "alice", model.Student, 50)
	quiz := createQuiz(t, db, "True", 10)

	result, err := s.SubmitAnswer(user.ID, quiz.ID, "False")
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, 50, userPoints(t, db, user.ID))

	// A later correct attempt still works.
	result, err = s.SubmitAnswer(user.ID, quiz.ID, "true ")
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 60, userPoints(t, db, user.ID))
}

func TestSubmitAnswerQuizMissing(t *testing.T) {
	s, db := newLearningService(t)
	user := createUser(t, db, "alice", model.Student, 0)

	_, err := s.SubmitAnswer(user.ID, 999, "True")
	require.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestGetModuleMissing(t *testing.T) {
	s, _ := newLearningService(t)

	_, err := s.GetModule(999)
	require.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestGetModulePreloadsQuizzes(t *testing.T) {
	s, db := newLearningService(t)
	quiz := createQuiz(t, db, "True", 10)

	module, err := s.GetModule(quiz.ModuleID)
	require.NoError(t, err)
	require.Len(t, module.Quizzes, 1)
	assert.Equal(t, quiz.ID, module.Quizzes[0].ID)
}
