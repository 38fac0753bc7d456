package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/edupract/exam_platform/internal/config"
	"github.com/edupract/exam_platform/internal/db"
	"github.com/edupract/exam_platform/internal/events"
	"github.com/edupract/exam_platform/internal/httpserver"
	"github.com/edupract/exam_platform/internal/logging"
	"github.com/edupract/exam_platform/internal/metrics"
	"github.com/edupract/exam_platform/internal/middleware"
	"github.com/edupract/exam_platform/internal/repo"
	"github.com/edupract/exam_platform/internal/service"
	"github.com/edupract/exam_platform/internal/tokens"
	"github.com/edupract/exam_platform/internal/upload"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New("server", cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gormDB, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	uploadStore, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, "user_events")

	r := repo.New(gormDB)
	tokenSvc := tokens.NewService(cfg.JWTSecret, cfg.TokenTTL)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	m := metrics.New()
	e.Use(middleware.RequestLogger(logger))
	e.Use(m.Middleware())

	httpserver.Register(e, &httpserver.Deps{
		Auth:      &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, Tokens: tokenSvc, Events: producer}},
		Users:     &httpserver.UserHTTP{Svc: &service.UserService{Repo: r, Events: producer}},
		Courses:   &httpserver.CourseHTTP{Svc: &service.CourseService{Repo: r}},
		Topics:    &httpserver.TopicHTTP{Svc: &service.TopicService{Repo: r}},
		Exercises: &httpserver.ExerciseHTTP{Svc: &service.ExerciseService{Repo: r}, Upload: uploadStore},
		Library:   &httpserver.LibraryHTTP{Svc: &service.LibraryService{Repo: r}},
		AuthMW:    middleware.NewAuth(tokenSvc),
		Metrics:   m,
		UploadDir: cfg.UploadDir,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}
	if err := producer.Close(); err != nil {
		logger.Error("producer close", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close", "error", err)
		}
	}
}
