package config

import (
	"testing"

	"gorm.io/gorm/logger"
)

func TestGormConfigTranslatesDriverErrors(t *testing.T) {
	config := gormConfig(logger.Warn)

	// Duplicate-key inserts must come back as gorm.ErrDuplicatedKey so a lost
	// reviewer-assignment race maps to a conflict, not a generic failure.
	if !config.TranslateError {
		t.Error("TranslateError should be enabled")
	}
	if config.Logger == nil {
		t.Error("gorm logger should be configured")
	}
}
