package config

import (
	"log"

	"restaurant-orders-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// App holds all runtime configuration, read from the environment.
type App struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Env         string `envconfig:"ENV" default:"development"`
	DBPath      string `envconfig:"DB_PATH" default:"restaurant_orders.db"`
	JWTSecret   string `envconfig:"JWT_SECRET" default:"restaurant_orders_super_secret_2024"`
	JWTTTLHours int    `envconfig:"JWT_TTL_HOURS" default:"24"`
	// StrictTransitions gates enforcement of the order state machine.
	// Off by default: any status may be set from any other, matching the
	// behavior restaurant dashboards rely on for manual corrections.
	StrictTransitions bool `envconfig:"STRICT_TRANSITIONS" default:"false"`
}

var (
	C  App
	DB *gorm.DB
)

// Load reads a local .env if present, then populates C from the environment.
func Load() error {
	_ = godotenv.Load()
	return envconfig.Process("", &C)
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(C.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}

// Migrate applies the schema for every persisted entity. Shared with tests,
// which run against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Notification{},
	)
}
