package database

import (
	"log"
	"os"
	"time"

	"levelup/backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	logrus.Info("Database connection established")

	Migrate(DB)
}

// Migrate registers the attendance join table, migrates the schema and
// seeds the game type reference data. Shared with the test setup.
func Migrate(db *gorm.DB) {
	if err := db.SetupJoinTable(&models.Event{}, "Attendees", &models.EventGamer{}); err != nil {
		logrus.Fatalf("Failed to set up attendance join table: %v", err)
	}

	err := db.AutoMigrate(
		&models.Gamer{},
		&models.AuthToken{},
		&models.GameType{},
		&models.Game{},
		&models.Event{},
	)
	if err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	seedGameTypes(db)
}

// seedGameTypes inserts the default game type labels. Game types are
// read-only reference data over the API, so an empty table would make the
// whole catalog unusable.
func seedGameTypes(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.GameType{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	labels := []string{"Board game", "Card game", "Tabletop RPG", "Dice game", "Miniatures"}
	for _, label := range labels {
		db.Create(&models.GameType{Label: label})
	}

	logrus.Infof("Seeded %d game types", len(labels))
}
