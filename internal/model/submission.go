package model

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Submission records one user's attempt at one challenge. ProofLink is
// empty when no proof file was attached. User and Challenge are pointers
// so responses built without preloading omit them instead of emitting
// zero values.
type Submission struct {
	BaseModel
	UserID      uint             `gorm:"not null;index" json:"userId"`
	User        *User            `json:"user,omitempty"`
	ChallengeID uint             `gorm:"not null;index" json:"challengeId"`
	Challenge   *Challenge       `json:"challenge,omitempty"`
	ProofLink   string           `gorm:"size:300" json:"proofLink"`
	Status      SubmissionStatus `gorm:"size:20;default:'pending'" json:"status"`
}

func (Submission) TableName() string {
	return "submissions"
}
