package services

import (
	"fmt"
	"log"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"
	"conference-management-api/utils"
)

// BootstrapRepository covers the storage reads/writes the seed routine needs.
type BootstrapRepository interface {
	CountAdmins() (int64, error)
	CreateUser(user *models.User) error
}

var bootstrapRepo BootstrapRepository = &gormBootstrapRepository{}

type gormBootstrapRepository struct{}

func (r *gormBootstrapRepository) CountAdmins() (int64, error) {
	var count int64
	err := config.DB.Model(&models.User{}).
		Where("role = ? AND delete_at IS NULL", models.RoleAdmin).
		Count(&count).Error
	return count, err
}

func (r *gormBootstrapRepository) CreateUser(user *models.User) error {
	return config.DB.Create(user).Error
}

// EnsureAdmin seeds the initial admin account once. Idempotent: when any admin
// row already exists nothing is inserted, so repeated process starts are safe.
func EnsureAdmin(email, password, name string) error {
	count, err := bootstrapRepo.CountAdmins()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if email == "" || password == "" {
		log.Println("No admin account found and no seed admin configured, skipping bootstrap")
		return nil
	}
	if !utils.ValidateEmail(email) {
		return fmt.Errorf("%w: invalid seed admin email", ErrValidation)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if name == "" {
		name = "Administrator"
	}

	now := time.Now()
	admin := models.User{
		Email:    email,
		Password: hashed,
		Name:     name,
		Role:     models.RoleAdmin,
		CreateAt: &now,
		UpdateAt: &now,
	}
	if err := bootstrapRepo.CreateUser(&admin); err != nil {
		return err
	}

	log.Printf("Seeded admin account %s", email)
	return nil
}
