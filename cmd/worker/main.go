package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/infra/notify"
	"carwash-booking/internal/infra/readstore"
	"carwash-booking/internal/pkg/config"
	"carwash-booking/internal/pkg/mail"
	"carwash-booking/internal/usecase/commands"
	"carwash-booking/internal/usecase/queries"
)

// The worker consumes booking events and delivers user notifications. It runs
// separately from the API server so notification backlog never slows bookings.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	consumer := notify.NewConsumer(cfg.Kafka)
	defer func() {
		if err := consumer.Close(); err != nil {
			slog.Warn("failed to close kafka consumer", "error", err.Error())
		}
	}()

	notifier := &notifier{
		users:     readstore.NewUserReadStore(pool),
		carWashes: readstore.NewCarWashReadStore(pool),
		services:  readstore.NewServiceReadStore(pool),
		sender:    mail.NewLogSender(),
	}

	slog.Info("notification worker started",
		"topic", cfg.Kafka.BookingTopic,
		"group", cfg.Kafka.ConsumerGroup)

	if err := consumer.Run(ctx, notifier.handle); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("consumer stopped", "error", err)
		os.Exit(1)
	}

	slog.Info("notification worker stopped")
}

type notifier struct {
	users     queries.UserReadStore
	carWashes queries.CarWashReadStore
	services  queries.ServiceReadStore
	sender    mail.Sender
}

// handle renders and delivers the notification for one booking event. Name
// lookups are best effort; a missing catalog entry never drops the message.
// The recipient address is not: without it there is nowhere to deliver.
func (n *notifier) handle(ctx context.Context, evt commands.BookingEvent) error {
	user, err := n.users.FindByID(ctx, evt.UserID)
	if err != nil {
		return err
	}

	data := mail.TemplateData{
		Date:      evt.Date,
		StartTime: evt.StartTime,
	}

	if wash, err := n.carWashes.FindByID(ctx, evt.CarWashID); err == nil {
		data.CarWashName = wash.Name
	}
	if svc, err := n.services.FindByID(ctx, evt.ServiceID); err == nil {
		data.ServiceName = svc.Name
	}

	msg, err := mail.Render(evt.Type, data)
	if err != nil {
		return err
	}

	return n.sender.Send(ctx, user.Email, msg)
}
