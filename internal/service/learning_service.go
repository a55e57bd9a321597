package service

import (
	"errors"
	"strings"

	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/repository"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/util"
	"gorm.io/gorm"
)

type LearningService struct {
	ModuleRepo *repository.ModuleRepository
	QuizRepo   *repository.QuizRepository
	UserRepo   *repository.UserRepository
}

func NewLearningService(moduleRepo *repository.ModuleRepository, quizRepo *repository.QuizRepository, userRepo *repository.UserRepository) *LearningService {
	return &LearningService{
		ModuleRepo: moduleRepo,
		QuizRepo:   quizRepo,
		UserRepo:   userRepo,
	}
}

func (s *LearningService) ListModules() ([]model.Module, error) {
	return s.ModuleRepo.FindAll()
}

func (s *LearningService) GetModule(id uint) (*model.Module, error) {
	module, err := s.ModuleRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrModuleNotFound
	}
	return module, err
}

func (s *LearningService) GetQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

// AnswerResult reports the outcome of one quiz attempt.
type AnswerResult struct {
	Correct bool `json:"correct"`
	Awarded int  `json:"awarded"`
}

// SubmitAnswer grades the answer against the stored one, exact match
// after trimming and lowercasing. A correct answer credits the quiz's
// points to the user; a wrong one changes nothing. No partial credit.
func (s *LearningService) SubmitAnswer(userID, quizID uint, answer string) (*AnswerResult, error) {
	quiz, err := s.GetQuiz(quizID)
	if err != nil {
		return nil, err
	}

	given := strings.ToLower(strings.TrimSpace(answer))
	want := strings.ToLower(strings.TrimSpace(quiz.CorrectAnswer))
	if given == "" || given != want {
		return &AnswerResult{Correct: false}, nil
	}

	award := quiz.Award()
	if err := s.UserRepo.AddEcoPoints(userID, award); err != nil {
		return nil, err
	}

	return &AnswerResult{Correct: true, Awarded: award}, nil
}
