package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"fiesta/cmd"
	"fiesta/internal/adapters/out/postgres/courierrepo"
	"fiesta/internal/adapters/out/postgres/orderrepo"
	"fiesta/internal/adapters/out/postgres/promorepo"
	"fiesta/internal/adapters/out/postgres/settingsrepo"
	"fiesta/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfigs(logger)

	db, err := openDatabase(config)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err = migrateDatabase(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	jobManager := root.CreateJobManager(config)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, config.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded, relying on process environment")
	}

	shopChannelID, err := strconv.ParseInt(os.Getenv("SHOP_CHANNEL_ID"), 10, 64)
	if err != nil {
		log.Fatalf("SHOP_CHANNEL_ID must be a chat id: %v", err)
	}

	digestSchedule := os.Getenv("DIGEST_SCHEDULE")
	if digestSchedule == "" {
		digestSchedule = "0 0 9 * * *"
	}

	return cmd.Config{
		HTTPPort:       os.Getenv("HTTP_PORT"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      os.Getenv("DB_SSLMODE"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		ShopChannelID:  shopChannelID,
		DigestSchedule: digestSchedule,
	}
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode,
	)
	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
}

func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&courierrepo.CourierDTO{},
		&promorepo.PromoDTO{},
		&userrepo.UserDTO{},
		&settingsrepo.SettingDTO{},
	)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
