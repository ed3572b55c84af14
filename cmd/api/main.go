package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"eventplanner-api/internal/core/auth"
	"eventplanner-api/internal/core/config"
	"eventplanner-api/internal/core/database"
	"eventplanner-api/internal/core/logger"
	"eventplanner-api/internal/core/server"
	"eventplanner-api/internal/repo"
	"eventplanner-api/internal/service"
	"eventplanner-api/internal/transport/http/handler"
	"eventplanner-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal("mongodb connect", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(ctx)
	}()
	if err := db.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("mongodb indexes", zap.Error(err))
	}
	log.Info("database connected", zap.String("database", cfg.Mongo.Database))

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.JWT.TTL,
	}

	userRepo := repo.NewUserRepo(db.Users())
	inquiryRepo := repo.NewInquiryRepo(db.Inquiries())
	feedbackRepo := repo.NewFeedbackRepo(db.Feedbacks())

	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(userRepo, jwter)),
		Inquiry:  handler.NewInquiryHandler(service.NewInquiryService(inquiryRepo)),
		Feedback: handler.NewFeedbackHandler(service.NewFeedbackService(feedbackRepo)),
		Admin:    handler.NewAdminHandler(service.NewDashboardService(userRepo, inquiryRepo, feedbackRepo)),
	}

	r := router.New(log, jwter, userRepo, cfg.ClientOrigin, handlers)

	addr := server.Addr(cfg.HTTP.Host, cfg.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started", zap.String("addr", addr), zap.Int("port", cfg.HTTP.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}
