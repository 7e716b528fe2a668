package config

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ruban71/Slooze-Food-App/models"
)

type Config struct {
	Port      string
	DBSource  string
	JWTSecret []byte
	JWTTTL    time.Duration
	Seed      bool
}

// Load reads configuration from the environment. A .env file is
// honoured when present but not required.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBSource:  getEnv("DB_SOURCE", "food_ordering.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "slooze_food_super_secret_2024")),
		JWTTTL:    24 * time.Hour,
		Seed:      getEnv("SEED_ON_START", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB connects to the store and migrates the schema. The returned
// handle is passed explicitly to every handler; there is no package
// level singleton.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("✅ Database connected and migrated successfully")
	return db, nil
}

// Migrate applies the schema for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.PaymentProfile{},
	)
}
