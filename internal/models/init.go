package models

import (
	"strings"

	"github.com/storefront-api/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultStaff 初始化默认员工账号，已存在员工时跳过
func InitDefaultStaff(email, password string) error {
	var count int64
	if err := DB.Model(&User{}).Where("is_staff = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = "admin@example.com"
	}
	defaultPassword := password == ""
	if defaultPassword {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	staff := User{
		Email:        email,
		PasswordHash: string(hash),
		IsStaff:      true,
	}
	if err := DB.Create(&staff).Error; err != nil {
		return err
	}

	if defaultPassword {
		logger.Warnw("default_staff_created_with_default_password", "email", email)
	} else {
		logger.Infow("default_staff_created", "email", email)
	}
	return nil
}
