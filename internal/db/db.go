package db

import (
	"os"
	"sync"
	"time"

	"gamescove/internal/models"
	"gamescove/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	handle *gorm.DB
	once   sync.Once
)

// Get returns the shared pooled connection, opening it on first use.
// A missing DATABASE_URL is fatal and non-retryable.
func Get() *gorm.DB {
	once.Do(open)
	return handle
}

func open() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logrus.Fatal("DATABASE_URL is not set")
	}

	var err error
	handle, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewLogger(100 * time.Millisecond),
	})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := handle.DB()
	if err != nil {
		logrus.Fatalf("Failed to unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(utils.EnvInt("DB_MAX_OPEN_CONNS", 10))
	sqlDB.SetMaxIdleConns(utils.EnvInt("DB_MAX_IDLE_CONNS", 2))
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	logrus.Info("Database connection established")

	if err := Migrate(handle); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	logrus.Info("Database migration completed")

	seedSettings(handle)
}

// Migrate creates/updates the schema for every entity. Exposed so tests can
// run it against their own connections.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.Game{},
		&models.Product{},
		&models.BlogPost{},
		&models.Comment{},
		&models.SocialLink{},
		&models.Ad{},
		&models.Setting{},
	)
}

// Close releases the pool. Called from the shutdown hook.
func Close() {
	if handle == nil {
		return
	}
	sqlDB, err := handle.DB()
	if err != nil {
		logrus.Errorf("Failed to unwrap sql db on close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("Failed to close database: %v", err)
	}
}

func seedSettings(g *gorm.DB) {
	var count int64
	g.Model(&models.Setting{}).Count(&count)
	if count > 0 {
		return
	}

	for key, value := range models.SettingDefaults {
		if err := g.Create(&models.Setting{Key: key, Value: value}).Error; err != nil {
			logrus.Errorf("Failed to seed setting %s: %v", key, err)
		}
	}
	logrus.Info("Default site settings created")
}
