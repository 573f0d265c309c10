package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/buscavan/api/clients"
	"github.com/buscavan/api/config"
	"github.com/buscavan/api/handler"
	"github.com/buscavan/api/internal/jsonlog"
	"github.com/buscavan/api/migrations"
	"github.com/buscavan/api/repository"
	"github.com/buscavan/api/repository/postgres"
	"github.com/buscavan/api/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

// @title Buscavan API
// @version 1.0.0
// @description This is an API service for managing van trips, boarding locations and trip comments.
// @BasePath /
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Load environment variables from a .env file when one exists. In
	// production the variables come from the environment itself.
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.PrintError(err, nil)
	}

	// Initialize configuration
	var cfg config.Config
	flag.IntVar(&cfg.Server.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Server.Env, "env", "development", "Environment(development|staging|production)")

	// Read the database connection pool settings into the config
	flag.StringVar(&cfg.Database.DSN, "db-dsn", os.Getenv("DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.Database.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.IntVar(&cfg.Database.MaxIdleConns, "db-max-idle-conns", 25, "PostgreSQL max idle connections")
	flag.StringVar(&cfg.Database.MaxIdleTime, "db-max-idle-time", "15m", "PostgreSQL max connection idle time")
	flag.BoolVar(&cfg.Database.Automigrate, "db-automigrate", true, "Run database migrations on startup")

	// Read the SMTP server settings into the config
	var smtpport int
	if s := os.Getenv("SMTPPORT"); s != "" {
		smtpport, err = strconv.Atoi(s)
		if err != nil {
			logger.PrintError(err, nil)
		}
	}
	flag.StringVar(&cfg.SMTP.Host, "smtp-host", os.Getenv("SMTPHOST"), "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", smtpport, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", os.Getenv("SMTPUSERNAME"), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", os.Getenv("SMTPPASSWORD"), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "Buscavan <no-reply@buscavan.app>", "SMTP sender")

	// Read AWS S3 settings into the config
	flag.StringVar(&cfg.S3.AccessKeyID, "s3-access-key", os.Getenv("AWSACCESSKEYID"), "S3 access key ID")
	flag.StringVar(&cfg.S3.SecretAccessKey, "s3-secret", os.Getenv("AWSSECRETACCESSKEY"), "S3 secret access key")
	flag.StringVar(&cfg.S3.Region, "s3-region", os.Getenv("AWSS3REGION"), "S3 Region")
	flag.StringVar(&cfg.S3.Bucket, "s3-bucket", os.Getenv("AWSS3BUCKET"), "S3 bucket")

	// Read the locations directory settings into the config
	flag.StringVar(&cfg.Locations.BaseURL, "locations-base-url", "https://servicodados.ibge.gov.br/api/v1/localidades", "Locations directory base URL")

	// Read the rate limiter settings into the config
	flag.Float64Var(&cfg.Limiter.RPS, "limiter-rps", 4, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.Limiter.Burst, "limiter-burst", 8, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.Limiter.Enabled, "limiter-enabled", true, "Enable rate limiter")

	// Read the metrics and basic auth settings into the config
	flag.BoolVar(&cfg.Metrics.Enabled, "metrics-enabled", true, "Enable request metrics")
	flag.StringVar(&cfg.BasicAuth.Username, "basic-auth-username", os.Getenv("BASICAUTHUSERNAME"), "Basic auth username for debug endpoints")
	flag.StringVar(&cfg.BasicAuth.Password, "basic-auth-password", os.Getenv("BASICAUTHPASSWORD"), "Basic auth password for debug endpoints")

	// Process the -cors-trusted-origins command line flag
	flag.Func("cors-trusted-origin", "Trusted CORS origin (space separated)", func(s string) error {
		cfg.Cors.TrustedOrigins = strings.Fields(s)
		return nil
	})

	flag.Parse()

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	// Run embedded schema migrations
	if cfg.Database.Automigrate {
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			logger.PrintFatal(err, nil)
		}
		if err := goose.Up(db, "."); err != nil {
			logger.PrintFatal(err, nil)
		}
		logger.PrintInfo("database migrations applied", nil)
	}

	// Blob storage for trip photos
	s3client, err := clients.NewS3Client(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	blob := clients.NewBlobStore(s3client, cfg.S3.Bucket)

	// Other shared resources: waitgroup, HTTP client and in-memory cache
	var wg sync.WaitGroup
	httpClient := clients.NewHTTPClient()
	cache := ttlcache.New(ttlcache.WithTTL[string, []byte](30 * time.Minute))
	go cache.Start()

	// Application layers
	repo := repository.New(db)
	service := service.New(cfg, &wg, logger, repo, blob, httpClient, cache)
	handler := handler.New(cfg, logger, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(&wg, logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
