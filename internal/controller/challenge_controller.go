package controller

import (
	"errors"

	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/service"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/util"
	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	ChallengeService *service.ChallengeService
}

func NewChallengeController(challengeService *service.ChallengeService) *ChallengeController {
	return &ChallengeController{ChallengeService: challengeService}
}

func (c *ChallengeController) GetChallenge(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	challenge, err := c.ChallengeService.GetChallenge(id)
	if err != nil {
		if errors.Is(err, util.ErrChallengeNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, challenge)
}

// Submit takes a multipart form with an optional "proof" image.
func (c *ChallengeController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseID(ctx)
	if !ok {
		return
	}

	proof, err := ctx.FormFile("proof")
	if err != nil {
		// Proof is optional.
		proof = nil
	}

	submission, err := c.ChallengeService.Submit(ctx.Request.Context(), user.UserID, id, proof)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrChallengeNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrFileTypeNotAllowed):
			util.BadRequest(ctx, "unsupported file type")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, submission)
}

func (c *ChallengeController) ListMySubmissions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.ChallengeService.UserSubmissions(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

func (c *ChallengeController) ListPendingSubmissions(ctx *gin.Context) {
	submissions, err := c.ChallengeService.PendingSubmissions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

type ReviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
}

func (c *ChallengeController) ReviewSubmission(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.ChallengeService.Review(id, req.Decision == "approved")
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadyReviewed):
			util.Error(ctx, 409, "submission already reviewed")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, submission)
}
