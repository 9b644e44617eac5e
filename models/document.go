package models

import (
	"time"
)

// Document verification status values.
const (
	DocumentStatusPending  = "pending"
	DocumentStatusVerified = "verified"
	DocumentStatusRejected = "rejected"
)

// Document origin types. Acceptance is meaningful only for admin uploads.
const (
	DocumentTypeUserUpload  = "user_upload"
	DocumentTypeAdminUpload = "admin_upload"
)

// ValidVerificationStatus reports whether s is a terminal verification status an
// admin may set. "pending" is the initial state only, never a verify target.
func ValidVerificationStatus(s string) bool {
	return s == DocumentStatusVerified || s == DocumentStatusRejected
}

type Document struct {
	DocumentID int        `gorm:"primaryKey;column:document_id" json:"document_id"`
	UserID     int        `gorm:"column:user_id" json:"user_id"`
	Title      string     `gorm:"column:title" json:"title"`
	FilePath   string     `gorm:"column:file_path" json:"file_path"`
	Status     string     `gorm:"column:status" json:"status"`
	Type       string     `gorm:"column:type" json:"type"`
	Accepted   bool       `gorm:"column:accepted" json:"accepted"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt   *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName overrides
func (Document) TableName() string {
	return "documents"
}
