package main

import (
	"github.com/SeakMengs/WorkshopHub/internal/config"
	"github.com/SeakMengs/WorkshopHub/internal/database"
	"github.com/SeakMengs/WorkshopHub/internal/env"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	// case-insensitive emails
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext;").Error; err != nil {
		logger.Panicf("Failed to create citext extension: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.WorkshopCategory{},
		&model.WorkshopType{},
		&model.AttachmentFile{},
		&model.Workshop{},
		&model.WorkshopSchedule{},
		&model.WorkshopRating{},
		&model.Notification{},
		&model.ChatMessage{},
		&model.Comment{},
		&model.Testimonial{},
		&model.Banner{},
	)
	if err != nil {
		logger.Panicf("Migration failed: %v", err)
	}

	logger.Info("Migration complete \n")
}
