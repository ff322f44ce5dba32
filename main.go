// TaskWebService is a web service that provides list, create and status update operations for tasks.
//
// Tasks are stored in MySQL (or SQLite for local runs) through GORM in the task table.
// Rate limiting with a default rate of 2 events per second and burst limit of 20 events is applied
// to the task endpoints to protect against abuse.
// It also provides Prometheus metrics for monitoring and recording metrics.
//
// The following endpoints are available:
//
//  1. GET /tasks - List all tasks ordered by date
//  2. POST /tasks - Create a new task
//  3. PUT /tasks, PATCH /tasks - Update the status of an existing task
//  4. GET /health - Check the database connection
//  5. GET /metrics - Display Prometheus metrics
//
// Run "taskservice serve" to start the server and "taskservice migrate" to create the schema only.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"TaskWebService/config"
	"TaskWebService/handlers"
	"TaskWebService/repository"
	"TaskWebService/validation"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

var log = logrus.New()

func main() {
	app := &cli.App{
		Name:  "taskservice",
		Usage: "task management API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "HTTP port to listen on (overrides PORT)"},
			&cli.StringFlag{Name: "db-driver", Usage: "database driver, mysql or sqlite (overrides DB_DRIVER)"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "migrate the schema and start the HTTP server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the task table and exit",
				Action: migrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) *config.Config {
	cfg := config.Load()
	if c.IsSet("port") {
		cfg.Port = c.String("port")
	}
	if c.IsSet("db-driver") {
		cfg.DBDriver = c.String("db-driver")
	}

	log.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return cfg
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := repository.Open(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(db); err != nil {
		repository.Close(db)
		return nil, err
	}
	log.WithField("driver", cfg.DBDriver).Info("Connected!")
	return db, nil
}

func migrate(c *cli.Context) error {
	cfg := loadConfig(c)
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	log.Info("Migration complete")
	return repository.Close(db)
}

func serve(c *cli.Context) error {
	cfg := loadConfig(c)
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	metrics := handlers.NewMetrics(prometheus.DefaultRegisterer)
	tasks := handlers.NewTaskHandler(
		repository.NewTaskRepository(db),
		validation.New(),
		log,
		metrics,
		cfg.RequestTimeout,
	)
	health := handlers.HealthHandler(func(ctx context.Context) error {
		return repository.Ping(ctx, db)
	}, log)
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(tasks, health, limiter, metrics, prometheus.DefaultGatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			// in-flight requests finish before the pool is closed
			"task-service": func(ctx context.Context) error {
				log.Info("Graceful shutdown initiated...")
				if err := server.Shutdown(ctx); err != nil {
					return err
				}
				return repository.Close(db)
			},
		},
	)

	if exitCode := <-wait; exitCode != 0 {
		return cli.Exit("shutdown did not complete cleanly", exitCode)
	}
	log.Info("Server stopped")
	return nil
}
