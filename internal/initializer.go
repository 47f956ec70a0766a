package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"calendar-assistant/internal/managers"
	"calendar-assistant/internal/routing"
	"calendar-assistant/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	envFile     = ".env"
	defaultPort = "5000"
)

func Init() {
	err := godotenv.Load(envFile)
	if err != nil {
		log.Info("No .env file found, using environment variables from system")
	} else {
		log.Info("Loaded environment variables from .env file")
	}

	logLevel := os.Getenv(utils.LogLevelEnv)
	setLogLevel(logLevel)

	apiKey := os.Getenv(utils.GoogleApiKeyEnv)
	if apiKey == "" {
		log.Fatal(utils.GoogleApiKeyEnv + " not set in environment")
	}

	serviceAccountJSON := os.Getenv(utils.GoogleServiceAccountEnv)
	if serviceAccountJSON == "" {
		log.Fatal(utils.GoogleServiceAccountEnv + " not set in environment")
	}

	ctx := context.Background()

	// Initialize extraction manager
	extractionMgr, err := managers.NewExtractionManager(ctx, apiKey)
	if err != nil {
		log.Fatal("Error initializing extraction manager: ", err)
	}

	// Initialize calendar manager
	calendarMgr, err := managers.NewCalendarManager(ctx, serviceAccountJSON)
	if err != nil {
		log.Fatal("Error initializing calendar manager: ", err)
	}

	// Initialize mail manager
	mailMgr := managers.NewMailManager()

	// Initialize JWT manager
	jwtMgr, err := managers.NewJWTManagerFromFile()
	if err != nil {
		panic(err)
	}

	// Connect to the optional event-log database
	var databaseMgr managers.DatabaseMgr
	if pool := initializeDatabase(); pool != nil {
		defer pool.Close()
		databaseMgr = managers.NewDatabaseManager(pool)
	}

	// Initialize router
	r := routing.InitRouter(extractionMgr, calendarMgr, mailMgr, databaseMgr, jwtMgr)
	log.Println("Initialized router")

	// Handle interrupt signal gracefully
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)

		<-c
		log.Println("Server shutting down...")
		os.Exit(0)
	}()

	port := os.Getenv(utils.PortEnv)
	if port == "" {
		port = defaultPort
	}

	// Start server on the specified port
	addr := "0.0.0.0:" + port
	log.Printf("Starting server on %s...\n", addr)
	err = http.ListenAndServe(addr, r)
	if err != nil {
		log.Fatal("Error starting server: ", err)
	}
}

// initializeDatabase connects the event-log pool. Deployments without the
// DB_* variables run without an event log, which is not an error.
func initializeDatabase() *pgxpool.Pool {
	var (
		dbHost     = os.Getenv(utils.DbHostEnv)
		dbPort     = os.Getenv(utils.DbPortEnv)
		dbUser     = os.Getenv(utils.DbUserEnv)
		dbPassword = os.Getenv(utils.DbPassEnv)
		dbName     = os.Getenv(utils.DbNameEnv)
	)

	if dbHost == "" || dbPort == "" || dbUser == "" || dbPassword == "" || dbName == "" {
		log.Info("Database environment variables not set, event log disabled")
		return nil
	}

	log.Info("Initializing database")

	url := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort, dbUser, dbPassword, dbName)
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Fatal("error configuring database: ", err)
	}

	config.MinConns = 5
	config.MaxConns = 30
	config.MaxConnIdleTime = time.Minute * 2
	config.HealthCheckPeriod = time.Minute * 1

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal("error connecting to database: ", err)
	}
	log.Info("Connected to database")
	return pool
}

func setLogLevel(logLevel string) {
	switch logLevel {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "INFO":
		log.SetLevel(log.InfoLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	case "FATAL":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.SetReportCaller(true)
	log.SetOutput(os.Stdout)
}
