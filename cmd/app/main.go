package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to wire application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:  envOrDefault("HTTP_PORT", "8080"),
		StaticDir: envOrDefault("STATIC_DIR", "static"),

		ShippoAPIKey:  os.Getenv("SHIPPO_API_KEY"),
		ShippoBaseURL: os.Getenv("SHIPPO_BASE_URL"),

		PrintNodeAPIKey:    os.Getenv("PRINTNODE_API_KEY"),
		PrintNodeBaseURL:   os.Getenv("PRINTNODE_BASE_URL"),
		PrintNodePrinterID: envInt64("PRINTNODE_PRINTER_ID"),

		ShipFromName:    os.Getenv("SHIP_FROM_NAME"),
		ShipFromStreet:  os.Getenv("SHIP_FROM_STREET"),
		ShipFromCity:    os.Getenv("SHIP_FROM_CITY"),
		ShipFromState:   os.Getenv("SHIP_FROM_STATE"),
		ShipFromZip:     os.Getenv("SHIP_FROM_ZIP"),
		ShipFromCountry: os.Getenv("SHIP_FROM_COUNTRY"),
		ShipFromPhone:   os.Getenv("SHIP_FROM_PHONE"),
		ShipFromEmail:   os.Getenv("SHIP_FROM_EMAIL"),

		LedgerDriver: envOrDefault("LEDGER_DRIVER", "memory"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBSslMode:    os.Getenv("DB_SSLMODE"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// envInt64 returns 0 for a missing or malformed value; printing is
// best-effort, so a misconfigured printer must not stop the service.
func envInt64(key string) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Warnf("Invalid %s, ignoring: %v", key, err)
		return 0
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Validator = httpin.NewRequestValidator()

	server := httpin.NewServer(
		app.CreatePurchaseOrderCommandHandler(),
		app.CreateGetQuotesQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.File("/", configs.StaticDir+"/admin.html")
	e.Static("/", configs.StaticDir)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
