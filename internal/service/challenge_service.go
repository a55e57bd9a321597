package service

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/repository"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/util"
	"gorm.io/gorm"
)

type ChallengeService struct {
	ChallengeRepo  *repository.ChallengeRepository
	SubmissionRepo *repository.SubmissionRepository
	Storage        *StorageService
	AllowedExts    []string
	DB             *gorm.DB
}

func NewChallengeService(challengeRepo *repository.ChallengeRepository, submissionRepo *repository.SubmissionRepository, storage *StorageService, allowedExts []string, db *gorm.DB) *ChallengeService {
	return &ChallengeService{
		ChallengeRepo:  challengeRepo,
		SubmissionRepo: submissionRepo,
		Storage:        storage,
		AllowedExts:    allowedExts,
		DB:             db,
	}
}

func (s *ChallengeService) ListChallenges() ([]model.Challenge, error) {
	return s.ChallengeRepo.FindAll()
}

func (s *ChallengeService) GetChallenge(id uint) (*model.Challenge, error) {
	challenge, err := s.ChallengeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrChallengeNotFound
	}
	return challenge, err
}

// Submit records one attempt at a challenge with status pending. The
// proof file is optional; when present only allow-listed image types are
// accepted, and the stored name gets a UUID prefix so identical client
// filenames never clobber each other.
func (s *ChallengeService) Submit(ctx context.Context, userID, challengeID uint, proof *multipart.FileHeader) (*model.Submission, error) {
	challenge, err := s.GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}

	proofLink := ""
	if proof != nil && proof.Filename != "" {
		proofLink, err = s.storeProof(ctx, proof)
		if err != nil {
			return nil, err
		}
	}

	submission := &model.Submission{
		UserID:      userID,
		ChallengeID: challenge.ID,
		ProofLink:   proofLink,
		Status:      model.SubmissionPending,
	}
	if err := s.SubmissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *ChallengeService) storeProof(ctx context.Context, proof *multipart.FileHeader) (string, error) {
	if !util.AllowedExtension(proof.Filename, s.AllowedExts) {
		return "", util.ErrFileTypeNotAllowed
	}

	f, err := proof.Open()
	if err != nil {
		return "", err
	}
	mimeType, err := util.DetectMimeType(f)
	f.Close()
	if err != nil {
		return "", err
	}
	if !util.IsImage(mimeType) {
		return "", util.ErrFileTypeNotAllowed
	}

	// Reopen: sniffing consumed the head of the stream.
	f, err = proof.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	name := model.GenerateUUID() + "_" + util.SanitizeFilename(proof.Filename)
	return s.Storage.Upload(ctx, name, f, proof.Size, mimeType)
}

func (s *ChallengeService) PendingSubmissions() ([]model.Submission, error) {
	return s.SubmissionRepo.FindPending()
}

// UserSubmissions lists one user's attempts, newest first.
func (s *ChallengeService) UserSubmissions(userID uint) ([]model.Submission, error) {
	return s.SubmissionRepo.FindByUser(userID)
}

// Review decides a pending submission. Approval credits the challenge's
// points to the submitter; a submission can be decided once, which keeps
// eco points monotonic.
func (s *ChallengeService) Review(submissionID uint, approve bool) (*model.Submission, error) {
	var submission *model.Submission
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var sub model.Submission
		if err := tx.Preload("Challenge").First(&sub, submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrSubmissionNotFound
			}
			return err
		}

		status := model.SubmissionRejected
		if approve {
			status = model.SubmissionApproved
		}

		// Guarded transition: the status predicate is re-checked by the
		// update itself, so under concurrent reviewers only one of them
		// moves the row out of pending. The loser sees zero rows
		// affected; a read-then-write check would let both pass on a
		// repeatable-read snapshot.
		res := tx.Model(&model.Submission{}).
			Where("id = ? AND status = ?", sub.ID, model.SubmissionPending).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrAlreadyReviewed
		}
		sub.Status = status

		if approve {
			award := model.DefaultChallengePoints
			if sub.Challenge != nil {
				award = sub.Challenge.Award()
			}
			if err := tx.Model(&model.User{}).
				Where("id = ?", sub.UserID).
				Update("eco_points", gorm.Expr("eco_points + ?", award)).
				Error; err != nil {
				return err
			}
		}

		submission = &sub
		return nil
	})
	return submission, err
}
