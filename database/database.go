package database

import (
	"log/slog"

	"worktime/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	// Auto migrate the schema
	err = DB.AutoMigrate(&models.Project{}, &models.Person{}, &models.TimeEntry{})
	if err != nil {
		return err
	}

	// Seed default admin if not exists
	if err := seedDefaultAdmin(); err != nil {
		return err
	}

	return nil
}

func seedDefaultAdmin() error {
	var count int64
	DB.Model(&models.Person{}).Where("email = ?", "admin@example.com").Count(&count)
	if count > 0 {
		return nil
	}

	admin := models.Person{
		FullName: "Administrator",
		Email:    "admin@example.com",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword("admin"); err != nil {
		return err
	}

	result := DB.Create(&admin)
	if result.Error != nil {
		return result.Error
	}

	slog.Info("default admin created", "email", admin.Email)
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
