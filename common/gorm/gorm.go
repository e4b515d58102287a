package gorm

import (
	"log/slog"
	"os"
	"time"

	"github.com/campusflow/cert-api/common"
	"github.com/campusflow/cert-api/type/shared/model"
	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitGorm() {
	// Configure slog-gorm logger
	lg := slogGorm.New(
		slogGorm.WithHandler(slog.Default().Handler()),
		slogGorm.WithSlowThreshold(100*time.Millisecond),
	)

	// Config GORM Connector
	connector := postgres.New(
		postgres.Config{
			DSN:                  *common.Config.Postgres,
			PreferSimpleProtocol: true,
		},
	)

	// Open connection
	db, connectionErr := gorm.Open(connector, &gorm.Config{
		Logger:         lg,
		TranslateError: true,
	})

	if connectionErr != nil {
		slog.Error("Failed to connect to database", "error", connectionErr)
		os.Exit(1)
	}

	slog.Info("GORM Connected!")

	common.Gorm = db
}

// Migrate applies the schema for the tables this service owns or reads.
func Migrate() {
	err := common.Gorm.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.EventParticipant{},
		&model.Certificate{},
	)

	if err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	slog.Info("Database migration completed")
}
