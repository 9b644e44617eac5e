package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"
	"conference-management-api/utils"

	"gorm.io/gorm"
)

// SubmissionRepository is the persistence gateway for the submission lifecycle.
// The gorm implementation below is swapped for a fake in tests.
type SubmissionRepository interface {
	ConferenceExists(conferenceID int) (bool, error)
	UserExists(userID int) (bool, error)
	CreateSubmission(submission *models.Submission) error
	FindSubmission(submissionID int) (*models.Submission, error)
	UpdateSubmissionStatus(submissionID int, status string, now time.Time) error
	ReviewExists(submissionID, reviewerID int) (bool, error)
	CreateReview(review *models.Review) error
	UpdateReviewContent(submissionID, reviewerID int, comments string, score int, now time.Time) (int64, error)
	ListAllSubmissions() ([]models.Submission, error)
	ListSubmissionsByOwner(caller Caller) ([]models.Submission, error)
}

var submissionRepo SubmissionRepository = &gormSubmissionRepository{}

type gormSubmissionRepository struct{}

func (r *gormSubmissionRepository) ConferenceExists(conferenceID int) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Conference{}).
		Where("conference_id = ? AND delete_at IS NULL", conferenceID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormSubmissionRepository) UserExists(userID int) (bool, error) {
	var count int64
	err := config.DB.Model(&models.User{}).
		Where("user_id = ? AND delete_at IS NULL", userID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormSubmissionRepository) CreateSubmission(submission *models.Submission) error {
	return config.DB.Create(submission).Error
}

func (r *gormSubmissionRepository) FindSubmission(submissionID int) (*models.Submission, error) {
	var submission models.Submission
	if err := config.DB.Where("submission_id = ? AND delete_at IS NULL", submissionID).
		First(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *gormSubmissionRepository) UpdateSubmissionStatus(submissionID int, status string, now time.Time) error {
	return config.DB.Model(&models.Submission{}).
		Where("submission_id = ?", submissionID).
		Updates(map[string]interface{}{
			"status":    status,
			"update_at": now,
		}).Error
}

func (r *gormSubmissionRepository) ReviewExists(submissionID, reviewerID int) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Review{}).
		Where("submission_id = ? AND reviewer_id = ?", submissionID, reviewerID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormSubmissionRepository) CreateReview(review *models.Review) error {
	return config.DB.Create(review).Error
}

func (r *gormSubmissionRepository) UpdateReviewContent(submissionID, reviewerID int, comments string, score int, now time.Time) (int64, error) {
	result := config.DB.Model(&models.Review{}).
		Where("submission_id = ? AND reviewer_id = ?", submissionID, reviewerID).
		Updates(map[string]interface{}{
			"comments":  comments,
			"score":     score,
			"update_at": now,
		})
	return result.RowsAffected, result.Error
}

func (r *gormSubmissionRepository) ListAllSubmissions() ([]models.Submission, error) {
	var submissions []models.Submission
	err := config.DB.Preload("User").Preload("Conference").
		Preload("Reviews").Preload("Reviews.Reviewer").
		Where("delete_at IS NULL").
		Find(&submissions).Error
	return submissions, err
}

func (r *gormSubmissionRepository) ListSubmissionsByOwner(caller Caller) ([]models.Submission, error) {
	var submissions []models.Submission
	query := config.DB.Preload("Conference").Where("delete_at IS NULL")
	err := ScopeToOwner(query, caller).Find(&submissions).Error
	return submissions, err
}

// AdminSubmissionRow is a listing row as admins see it: decorated with the
// author name, conference title, and the assigned reviewer names.
type AdminSubmissionRow struct {
	models.Submission
	AuthorName      string `json:"author_name"`
	ConferenceTitle string `json:"conference_title"`
	Reviewers       string `json:"reviewers"`
}

// OwnerSubmissionRow is a listing row as authors see it: their own submission
// with the conference title, no reviewer information exposed.
type OwnerSubmissionRow struct {
	models.Submission
	ConferenceTitle string `json:"conference_title"`
}

// CreateSubmission records a new paper for the calling author against an
// existing conference. New submissions always start pending.
func CreateSubmission(caller Caller, conferenceID int, title, abstract, filePath string) (*models.Submission, error) {
	missing := utils.MissingRequired(map[string]string{
		"title":    title,
		"abstract": abstract,
		"file":     filePath,
	}, "title", "abstract", "file")
	if conferenceID <= 0 {
		missing = append(missing, "conference_id")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	exists, err := submissionRepo.ConferenceExists(conferenceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: conference %d", ErrNotFound, conferenceID)
	}

	now := time.Now()
	submission := models.Submission{
		ConferenceID: conferenceID,
		UserID:       caller.UserID,
		Title:        title,
		Abstract:     abstract,
		FilePath:     filePath,
		Status:       models.SubmissionStatusPending,
		CreateAt:     &now,
		UpdateAt:     &now,
	}
	if err := submissionRepo.CreateSubmission(&submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// SetSubmissionStatus writes a decision status. Admin-only; the enum is checked
// before any storage write so an invalid value never touches the row.
func SetSubmissionStatus(caller Caller, submissionID int, status string) error {
	if !CanAdministrate(caller) {
		return ErrForbidden
	}
	if !models.ValidSubmissionStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if _, err := submissionRepo.FindSubmission(submissionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: submission %d", ErrNotFound, submissionID)
		}
		return err
	}

	return submissionRepo.UpdateSubmissionStatus(submissionID, status, time.Now())
}

// AssignReviewer links a reviewer to a submission. The duplicate pre-check plus
// the unique index on (submission_id, reviewer_id) keep the assignment unique
// even when two calls race.
func AssignReviewer(caller Caller, submissionID, reviewerID int) (*models.Review, error) {
	if !CanAdministrate(caller) {
		return nil, ErrForbidden
	}

	if _, err := submissionRepo.FindSubmission(submissionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: submission %d", ErrNotFound, submissionID)
		}
		return nil, err
	}

	exists, err := submissionRepo.UserExists(reviewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, reviewerID)
	}

	assigned, err := submissionRepo.ReviewExists(submissionID, reviewerID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, fmt.Errorf("%w: reviewer %d already assigned", ErrConflict, reviewerID)
	}

	now := time.Now()
	review := models.Review{
		SubmissionID: submissionID,
		ReviewerID:   reviewerID,
		CreateAt:     &now,
		UpdateAt:     &now,
	}
	if err := submissionRepo.CreateReview(&review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: reviewer %d already assigned", ErrConflict, reviewerID)
		}
		return nil, err
	}
	return &review, nil
}

// SubmitReview fills in the caller's review on a submission they are assigned
// to. The lookup is scoped to (submission_id, reviewer_id = caller), so an
// unassigned caller gets ErrNotFound rather than a hint the row exists.
func SubmitReview(caller Caller, submissionID int, comments string, score int) error {
	if strings.TrimSpace(comments) == "" {
		return fmt.Errorf("%w: missing comments", ErrValidation)
	}

	affected, err := submissionRepo.UpdateReviewContent(submissionID, caller.UserID, comments, score, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: no assignment for submission %d", ErrNotFound, submissionID)
	}
	return nil
}

// ListSubmissionsForAdmin returns every submission decorated with author and
// conference names plus the comma-joined reviewer names, in join order.
func ListSubmissionsForAdmin() ([]AdminSubmissionRow, error) {
	submissions, err := submissionRepo.ListAllSubmissions()
	if err != nil {
		return nil, err
	}

	rows := make([]AdminSubmissionRow, 0, len(submissions))
	for _, s := range submissions {
		row := AdminSubmissionRow{Submission: s}
		if s.User != nil {
			row.AuthorName = s.User.Name
		}
		if s.Conference != nil {
			row.ConferenceTitle = s.Conference.Title
		}
		names := make([]string, 0, len(s.Reviews))
		for _, review := range s.Reviews {
			if review.Reviewer != nil {
				names = append(names, review.Reviewer.Name)
			}
		}
		row.Reviewers = strings.Join(names, ", ")
		row.User = nil
		row.Conference = nil
		row.Reviews = nil
		rows = append(rows, row)
	}
	return rows, nil
}

// ListSubmissionsForOwner returns the caller's own submissions with conference
// titles. Reviewer assignments are not exposed to authors.
func ListSubmissionsForOwner(caller Caller) ([]OwnerSubmissionRow, error) {
	submissions, err := submissionRepo.ListSubmissionsByOwner(caller)
	if err != nil {
		return nil, err
	}

	rows := make([]OwnerSubmissionRow, 0, len(submissions))
	for _, s := range submissions {
		row := OwnerSubmissionRow{Submission: s}
		if s.Conference != nil {
			row.ConferenceTitle = s.Conference.Title
		}
		row.Conference = nil
		rows = append(rows, row)
	}
	return rows, nil
}
