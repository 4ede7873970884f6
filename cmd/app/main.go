package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"agrimarket/cmd"
	httpadapter "agrimarket/internal/adapters/in/http"
	"agrimarket/internal/adapters/out/postgres/logisticsrepo"
	"agrimarket/internal/adapters/out/postgres/orderrepo"
	"agrimarket/internal/adapters/out/postgres/stockrepo"
	"agrimarket/internal/adapters/out/postgres/userrepo"
	"agrimarket/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	waitForDatabase(dsn)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&stockrepo.StockDTO{},
		&orderrepo.OrderDTO{},
		&logisticsrepo.LogisticsDTO{},
		&userrepo.UserDTO{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetKPIReportQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// waitForDatabase pings the database until it accepts connections, so the
// service starts cleanly when the database container comes up a bit later.
func waitForDatabase(dsn string) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}
	defer db.Close()

	for attempt := 1; attempt <= 10; attempt++ {
		if err = db.Ping(); err == nil {
			return
		}
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	log.Fatalf("Database is not reachable: %v", err)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateAddStockCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmCapacityCommandHandler(),
		app.CreateAssignLogisticsCommandHandler(),
		app.CreateUpdateLogisticsStatusCommandHandler(),
		app.CreateGetStockQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetLogisticsQueryHandler(),
		app.CreateGetKPIReportQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
