package models

import (
	"time"
)

// UserToken stores one-time tokens such as password reset tokens. The token
// column holds a bcrypt hash of the raw token, never the raw value.
type UserToken struct {
	TokenID    int       `gorm:"primaryKey;column:token_id" json:"token_id"`
	UserID     int       `gorm:"column:user_id" json:"user_id"`
	TokenType  string    `gorm:"column:token_type" json:"token_type"`
	Token      string    `gorm:"column:token" json:"-"`
	ExpiresAt  time.Time `gorm:"column:expires_at" json:"expires_at"`
	IsRevoked  bool      `gorm:"column:is_revoked" json:"is_revoked"`
	DeviceInfo string    `gorm:"column:device_info" json:"device_info"`
	IPAddress  string    `gorm:"column:ip_address" json:"ip_address"`
	UserAgent  string    `gorm:"column:user_agent" json:"user_agent"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserToken) TableName() string {
	return "user_tokens"
}
