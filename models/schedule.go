package models

import (
	"time"
)

// ScheduleItem is a time-slotted agenda entry for a conference. Read-only
// reference data; there is no workflow around it.
type ScheduleItem struct {
	ScheduleID   int        `gorm:"primaryKey;column:schedule_id" json:"schedule_id"`
	ConferenceID int        `gorm:"column:conference_id" json:"conference_id"`
	Title        string     `gorm:"column:title" json:"title"`
	StartTime    *time.Time `gorm:"column:start_time" json:"start_time"`
	EndTime      *time.Time `gorm:"column:end_time" json:"end_time"`
	Room         string     `gorm:"column:room" json:"room"`
}

func (ScheduleItem) TableName() string {
	return "schedule"
}
