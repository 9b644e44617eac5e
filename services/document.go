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

// DocumentRepository is the persistence gateway for the document lifecycle.
type DocumentRepository interface {
	UserExists(userID int) (bool, error)
	CreateDocument(document *models.Document) error
	FindDocument(documentID int) (*models.Document, error)
	FindDocumentForOwner(documentID, ownerID int) (*models.Document, error)
	UpdateDocumentStatus(documentID int, status string, now time.Time) error
	MarkAccepted(documentID int, now time.Time) error
	ListAllDocuments() ([]models.Document, error)
	ListDocumentsByOwner(caller Caller) ([]models.Document, error)
}

var documentRepo DocumentRepository = &gormDocumentRepository{}

type gormDocumentRepository struct{}

func (r *gormDocumentRepository) UserExists(userID int) (bool, error) {
	var count int64
	err := config.DB.Model(&models.User{}).
		Where("user_id = ? AND delete_at IS NULL", userID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormDocumentRepository) CreateDocument(document *models.Document) error {
	return config.DB.Create(document).Error
}

func (r *gormDocumentRepository) FindDocument(documentID int) (*models.Document, error) {
	var document models.Document
	if err := config.DB.Where("document_id = ? AND delete_at IS NULL", documentID).
		First(&document).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *gormDocumentRepository) FindDocumentForOwner(documentID, ownerID int) (*models.Document, error) {
	var document models.Document
	if err := config.DB.Where("document_id = ? AND user_id = ? AND delete_at IS NULL", documentID, ownerID).
		First(&document).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *gormDocumentRepository) UpdateDocumentStatus(documentID int, status string, now time.Time) error {
	return config.DB.Model(&models.Document{}).
		Where("document_id = ?", documentID).
		Updates(map[string]interface{}{
			"status":    status,
			"update_at": now,
		}).Error
}

func (r *gormDocumentRepository) MarkAccepted(documentID int, now time.Time) error {
	return config.DB.Model(&models.Document{}).
		Where("document_id = ?", documentID).
		Updates(map[string]interface{}{
			"accepted":  true,
			"update_at": now,
		}).Error
}

func (r *gormDocumentRepository) ListAllDocuments() ([]models.Document, error) {
	var documents []models.Document
	err := config.DB.Preload("User").
		Where("delete_at IS NULL").
		Find(&documents).Error
	return documents, err
}

func (r *gormDocumentRepository) ListDocumentsByOwner(caller Caller) ([]models.Document, error) {
	var documents []models.Document
	query := config.DB.Where("delete_at IS NULL")
	err := ScopeToOwner(query, caller).Find(&documents).Error
	return documents, err
}

// AdminDocumentRow is a listing row as admins see it, decorated with the
// owning user's name.
type AdminDocumentRow struct {
	models.Document
	OwnerName string `json:"owner_name"`
}

// UploadDocument records a file for the caller, or — when the caller is an
// admin and targetUserID is set — issues a document to the target user. Issued
// documents carry type admin_upload and await the owner's acceptance.
func UploadDocument(caller Caller, title, filePath string, targetUserID int) (*models.Document, error) {
	missing := utils.MissingRequired(map[string]string{
		"title": title,
		"file":  filePath,
	}, "title", "file")
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	ownerID := caller.UserID
	documentType := models.DocumentTypeUserUpload
	if caller.IsAdmin() && targetUserID > 0 {
		exists, err := documentRepo.UserExists(targetUserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, targetUserID)
		}
		ownerID = targetUserID
		documentType = models.DocumentTypeAdminUpload
	}

	now := time.Now()
	document := models.Document{
		UserID:   ownerID,
		Title:    title,
		FilePath: filePath,
		Status:   models.DocumentStatusPending,
		Type:     documentType,
		Accepted: false,
		CreateAt: &now,
		UpdateAt: &now,
	}
	if err := documentRepo.CreateDocument(&document); err != nil {
		return nil, err
	}
	return &document, nil
}

// VerifyDocument writes the admin verification decision. Re-verifying simply
// overwrites the previous decision.
func VerifyDocument(caller Caller, documentID int, status string) error {
	if !CanAdministrate(caller) {
		return ErrForbidden
	}
	if !models.ValidVerificationStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if _, err := documentRepo.FindDocument(documentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: document %d", ErrNotFound, documentID)
		}
		return err
	}

	return documentRepo.UpdateDocumentStatus(documentID, status, time.Now())
}

// AcceptDocument flips accepted for a document the caller owns. The lookup is
// scoped to (document_id, user_id), so a non-owner gets the same ErrNotFound as
// a missing row. Re-accepting succeeds without changing anything.
func AcceptDocument(caller Caller, documentID int) error {
	document, err := documentRepo.FindDocumentForOwner(documentID, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: document %d", ErrNotFound, documentID)
		}
		return err
	}

	if document.Accepted {
		return nil
	}

	return documentRepo.MarkAccepted(documentID, time.Now())
}

// ListDocumentsForAdmin returns every document with the owner's name attached.
func ListDocumentsForAdmin() ([]AdminDocumentRow, error) {
	documents, err := documentRepo.ListAllDocuments()
	if err != nil {
		return nil, err
	}

	rows := make([]AdminDocumentRow, 0, len(documents))
	for _, d := range documents {
		row := AdminDocumentRow{Document: d}
		if d.User != nil {
			row.OwnerName = d.User.Name
		}
		row.User = nil
		rows = append(rows, row)
	}
	return rows, nil
}

// ListDocumentsForOwner returns only the caller's own documents.
func ListDocumentsForOwner(caller Caller) ([]models.Document, error) {
	return documentRepo.ListDocumentsByOwner(caller)
}
