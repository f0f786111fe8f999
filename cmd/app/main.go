package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/siliguripickdrop/backend/config"
	"github.com/siliguripickdrop/backend/internal/bootstrap"
	"github.com/siliguripickdrop/backend/internal/email"
	"github.com/siliguripickdrop/backend/internal/logger"
	"github.com/siliguripickdrop/backend/internal/repository"
	"github.com/siliguripickdrop/backend/internal/service/booking"
	"github.com/siliguripickdrop/backend/internal/service/status"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		logrus.Fatalf("connect mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logrus.Errorf("disconnect mongo: %v", err)
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	bookingRepo := repository.NewBookingRepository(db)
	statusRepo := repository.NewStatusCheckRepository(db)

	notifier := email.NewSender(cfg.Mail)
	bookingSvc := booking.NewBookingService(bookingRepo, notifier)
	statusSvc := status.NewStatusService(statusRepo)

	if err := bootstrap.Run(ctx, cfg, bookingSvc, statusSvc); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatalf("server error: %v", err)
	}
}
