package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campusflow/cert-api/type/shared/model"
)

// PostgresContainer holds the test database container
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *gorm.DB
	ConnStr   string
}

// SetupTestDatabase creates a PostgreSQL container and returns a GORM DB connection
func SetupTestDatabase(t *testing.T) *PostgresContainer {
	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgrescontainer.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		postgrescontainer.WithDatabase("test_certapi"),
		postgrescontainer.WithUsername("test"),
		postgrescontainer.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	// Connect with GORM. TranslateError matches the production connection so
	// unique constraint violations surface as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // Silent mode for tests
		TranslateError: true,
	})
	require.NoError(t, err, "Failed to connect to test database")

	// Run migrations
	err = db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.EventParticipant{},
		&model.Certificate{},
	)
	require.NoError(t, err, "Failed to run migrations")

	// Register cleanup
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	return &PostgresContainer{
		Container: postgresContainer,
		DB:        db,
		ConnStr:   connStr,
	}
}

// GetTestDB returns a DB transaction that auto-rollbacks for test isolation
func GetTestDB(t *testing.T, container *PostgresContainer) *gorm.DB {
	tx := container.DB.Begin()
	require.NoError(t, tx.Error, "Failed to begin transaction")

	t.Cleanup(func() {
		tx.Rollback()
	})

	return tx
}

// SeedCompletedEvent inserts a completed event with one attended and one
// no-show participant plus their user records.
func SeedCompletedEvent(t *testing.T, db *gorm.DB) *model.Event {
	users := []model.User{
		{ID: "user-1", Name: "Student One", Email: "one@example.edu"},
		{ID: "user-2", Name: "Student Two", Email: "two@example.edu"},
	}
	for _, user := range users {
		require.NoError(t, db.Create(&user).Error, "Failed to seed test user")
	}

	event := &model.Event{
		ID:       "event-1",
		Title:    "Spring Science Fair",
		Location: "Main Auditorium",
		Date:     time.Date(2025, time.August, 31, 9, 0, 0, 0, time.UTC),
		Status:   "approved",
	}
	require.NoError(t, db.Create(event).Error, "Failed to seed test event")

	participants := []model.EventParticipant{
		{EventID: event.ID, UserID: "user-1", Position: 0, Status: model.ParticipantStatusAttended},
		{EventID: event.ID, UserID: "user-2", Position: 1, Status: model.ParticipantStatusNoShow},
	}
	for _, participant := range participants {
		require.NoError(t, db.Create(&participant).Error, "Failed to seed test participant")
	}

	return event
}

// AssertRecordExists checks if a record exists in the database
func AssertRecordExists(t *testing.T, db *gorm.DB, model interface{}, condition string, args ...interface{}) {
	var count int64
	err := db.Model(model).Where(condition, args...).Count(&count).Error
	require.NoError(t, err, "Failed to count records")
	require.Greater(t, count, int64(0), "Expected record to exist but found none")
}

// AssertRecordNotExists checks that a record does not exist
func AssertRecordNotExists(t *testing.T, db *gorm.DB, model interface{}, condition string, args ...interface{}) {
	var count int64
	err := db.Model(model).Where(condition, args...).Count(&count).Error
	require.NoError(t, err, "Failed to count records")
	require.Equal(t, int64(0), count, "Expected no records but found %d", count)
}
