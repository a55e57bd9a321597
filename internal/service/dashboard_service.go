package service

import (
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/repository"
)

const leaderboardSize = 5

type DashboardService struct {
	UserRepo       *repository.UserRepository
	ModuleRepo     *repository.ModuleRepository
	ChallengeRepo  *repository.ChallengeRepository
	SubmissionRepo *repository.SubmissionRepository
}

func NewDashboardService(userRepo *repository.UserRepository, moduleRepo *repository.ModuleRepository, challengeRepo *repository.ChallengeRepository, submissionRepo *repository.SubmissionRepository) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		ModuleRepo:     moduleRepo,
		ChallengeRepo:  challengeRepo,
		SubmissionRepo: submissionRepo,
	}
}

// HomeData is the public landing payload.
type HomeData struct {
	Modules    []model.Module    `json:"modules"`
	Challenges []model.Challenge `json:"challenges"`
	TopUsers   []model.User      `json:"topUsers"`
}

func (s *DashboardService) Home() (*HomeData, error) {
	modules, err := s.ModuleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	challenges, err := s.ChallengeRepo.FindAll()
	if err != nil {
		return nil, err
	}
	topUsers, err := s.UserRepo.FindTopByEcoPoints(leaderboardSize)
	if err != nil {
		return nil, err
	}
	return &HomeData{Modules: modules, Challenges: challenges, TopUsers: topUsers}, nil
}

// DashboardData branches on role: students get the student-only
// leaderboard, teachers and admins get the pending review queue size.
type DashboardData struct {
	Role            model.UserRole    `json:"role"`
	Modules         []model.Module    `json:"modules"`
	Challenges      []model.Challenge `json:"challenges"`
	Leaderboard     []model.User      `json:"leaderboard,omitempty"`
	PendingToReview int64             `json:"pendingToReview,omitempty"`
}

func (s *DashboardService) Dashboard(user *model.User) (*DashboardData, error) {
	modules, err := s.ModuleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	challenges, err := s.ChallengeRepo.FindAll()
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		Role:       user.Role,
		Modules:    modules,
		Challenges: challenges,
	}

	if user.Role == model.Teacher || user.Role == model.Admin {
		pending, err := s.SubmissionRepo.CountPending()
		if err != nil {
			return nil, err
		}
		data.PendingToReview = pending
		return data, nil
	}

	leaderboard, err := s.UserRepo.FindTopStudents(leaderboardSize)
	if err != nil {
		return nil, err
	}
	data.Leaderboard = leaderboard
	return data, nil
}
