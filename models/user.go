package models

import (
	"time"
)

// Role values stored in users.role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	UserID         int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email          string     `gorm:"column:email;unique" json:"email"`
	Password       string     `gorm:"column:password" json:"-"`
	Name           string     `gorm:"column:name" json:"name"`
	Role           string     `gorm:"column:role" json:"role"`
	Affiliation    *string    `gorm:"column:affiliation" json:"affiliation,omitempty"`
	Bio            *string    `gorm:"column:bio" json:"bio,omitempty"`
	ProfilePicture *string    `gorm:"column:profile_picture" json:"profile_picture,omitempty"`
	CreateAt       *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName overrides
func (User) TableName() string {
	return "users"
}
