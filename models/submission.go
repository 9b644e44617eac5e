package models

import (
	"time"
)

// Submission status values. Admins may set any of the four at any time; there is
// no enforced ordering beyond the closed enum.
const (
	SubmissionStatusPending     = "pending"
	SubmissionStatusUnderReview = "under_review"
	SubmissionStatusAccepted    = "accepted"
	SubmissionStatusRejected    = "rejected"
)

// ValidSubmissionStatus reports whether s belongs to the submission status enum.
func ValidSubmissionStatus(s string) bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusUnderReview,
		SubmissionStatusAccepted, SubmissionStatusRejected:
		return true
	}
	return false
}

type Submission struct {
	SubmissionID int        `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	ConferenceID int        `gorm:"column:conference_id" json:"conference_id"`
	UserID       int        `gorm:"column:user_id" json:"user_id"`
	Title        string     `gorm:"column:title" json:"title"`
	Abstract     string     `gorm:"column:abstract" json:"abstract"`
	FilePath     string     `gorm:"column:file_path" json:"file_path"`
	Status       string     `gorm:"column:status" json:"status"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Conference *Conference `gorm:"foreignKey:ConferenceID" json:"conference,omitempty"`
	Reviews    []Review    `gorm:"foreignKey:SubmissionID" json:"reviews,omitempty"`
}

// Review links a reviewer (a user) to a submission. The pair
// (submission_id, reviewer_id) is unique; comments and score stay null until the
// reviewer files their review.
type Review struct {
	ReviewID     int        `gorm:"primaryKey;column:review_id" json:"review_id"`
	SubmissionID int        `gorm:"column:submission_id;uniqueIndex:idx_submission_reviewer" json:"submission_id"`
	ReviewerID   int        `gorm:"column:reviewer_id;uniqueIndex:idx_submission_reviewer" json:"reviewer_id"`
	Comments     *string    `gorm:"column:comments" json:"comments"`
	Score        *int       `gorm:"column:score" json:"score"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`

	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

// TableName overrides
func (Submission) TableName() string {
	return "submissions"
}

func (Review) TableName() string {
	return "submission_reviews"
}
