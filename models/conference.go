package models

import (
	"time"
)

type Conference struct {
	ConferenceID int        `gorm:"primaryKey;column:conference_id" json:"conference_id"`
	Title        string     `gorm:"column:title" json:"title"`
	Description  string     `gorm:"column:description" json:"description"`
	Date         *time.Time `gorm:"column:date" json:"date"`
	Location     string     `gorm:"column:location" json:"location"`
	Status       string     `gorm:"column:status" json:"status"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (Conference) TableName() string {
	return "conferences"
}
