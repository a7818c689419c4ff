package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/doarbem/donation-api/internal/api"
	"github.com/doarbem/donation-api/internal/cache"
	"github.com/doarbem/donation-api/internal/config"
	"github.com/doarbem/donation-api/internal/db"
	"github.com/doarbem/donation-api/internal/logger"
	"github.com/doarbem/donation-api/internal/mail"
	"github.com/doarbem/donation-api/internal/repository"
	"github.com/doarbem/donation-api/internal/repository/dao"
	"github.com/doarbem/donation-api/internal/scheduler"
	"github.com/doarbem/donation-api/internal/service"
	"github.com/doarbem/donation-api/internal/storage"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	zapLogger, err := logger.Init(conf.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	redisCache := cache.New(conf.Redis.Addr, conf.Redis.Password, conf.Redis.DB)

	store, err := storage.NewFileStore(conf.Storage.BasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize file store -> %w", err)
	}
	signer := storage.NewURLSigner(conf.Storage.SigningSecret, conf.Storage.BaseURL)

	queue := mail.NewRedisQueue(redisCache.RDB, "")
	sender := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     conf.Mail.SMTPHost,
		Port:     conf.Mail.SMTPPort,
		Username: conf.Mail.SMTPUsername,
		Password: conf.Mail.SMTPPassword,
		From:     conf.Mail.From,
		ReplyTo:  conf.Mail.ReplyTo,
	})
	worker := mail.NewWorker(queue, sender, conf.Mail.MaxAttempts, time.Duration(conf.Mail.BackoffSec)*time.Second, zapLogger)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	go worker.Run(workerCtx)

	campaignSvc := service.NewCampaignService(repository.NewCampaignRepository(dao.NewCampaignDAO(postgresDB)))
	tokenRepo := repository.NewPasswordResetTokenRepository(dao.NewPasswordResetTokenDAO(postgresDB))
	cronJobs := scheduler.New(campaignSvc, tokenRepo, zapLogger)
	if err = cronJobs.Start(); err != nil {
		stopWorker()
		return fmt.Errorf("failed to start scheduler -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, redisCache, queue, store, signer)

	addr := ":" + conf.Server.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		stopWorker()
		return fmt.Errorf("failed to start the server -> %w", err)
	case sig := <-quit:
		zap.L().Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}

	cronJobs.Stop()
	stopWorker()
	worker.Wait()

	return nil
}
