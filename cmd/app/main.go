package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"

	"pizzeria/cmd"
	httpadapter "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/postgres/accountrepo"
	"pizzeria/internal/adapters/out/postgres/affiliationrepo"
	"pizzeria/internal/adapters/out/postgres/flavorrepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateAssignReadyOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&affiliationrepo.AffiliationDTO{},
		&flavorrepo.FlavorDTO{},
		&accountrepo.CustomerDTO{},
		&accountrepo.EstablishmentDTO{},
		&accountrepo.CourierDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateFinishPreparationCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateWithdrawOrderCommandHandler(),
		app.CreateRequestAffiliationCommandHandler(),
		app.CreateUpdateAffiliationStatusCommandHandler(),
		app.CreateUpdateAvailabilityCommandHandler(),
		app.CreateExpressInterestCommandHandler(),
		app.CreateRemoveInterestCommandHandler(),
		app.CreateUpdateFlavorAvailabilityCommandHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
