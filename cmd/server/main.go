package main // Entry point package

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iliyamo/acara-ticketing/internal/config"
	"github.com/iliyamo/acara-ticketing/internal/database"
	"github.com/iliyamo/acara-ticketing/internal/handler"
	"github.com/iliyamo/acara-ticketing/internal/mail"
	"github.com/iliyamo/acara-ticketing/internal/middleware"
	"github.com/iliyamo/acara-ticketing/internal/payment"
	"github.com/iliyamo/acara-ticketing/internal/queue"
	"github.com/iliyamo/acara-ticketing/internal/repository"
	"github.com/iliyamo/acara-ticketing/internal/router"
	"github.com/iliyamo/acara-ticketing/internal/service"
	"github.com/iliyamo/acara-ticketing/internal/utils"
)

func main() {
	cfg, err := config.Load() // Load environment config
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	db, err := database.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()
	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		log.Warn("redis unavailable: response cache off, rate limiting is per instance")
	} else {
		defer rdb.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	users := repository.NewUserRepo(db)
	categories := repository.NewCategoryRepo(db)
	events := repository.NewEventRepo(db)
	tickets := repository.NewTicketRepo(db)
	orders := repository.NewOrderRepo(db)

	hasher := utils.NewHasher(cfg.Secret)
	tokens := utils.NewTokenIssuer(cfg.Secret, cfg.TokenTTL)

	renderer, err := mail.NewRenderer()
	if err != nil {
		return err
	}
	var sender mail.Sender
	if cfg.Mail.SendGridAPIKey != "" {
		sender = mail.NewSendGridSender(cfg.Mail.SendGridAPIKey)
	} else {
		log.Warn("SENDGRID_API_KEY not set: activation mails are not sent")
	}
	mailer := mail.NewNotifier(sender, renderer, cfg.Mail.From, cfg.Mail.FromName)

	// With a broker, registration publishes and a consumer mails; without
	// one the mail goes out from the request's background goroutine.
	var notifier service.Notifier = mailer
	if cfg.RabbitMQURL != "" {
		notifier = queue.NewPublisher(cfg.RabbitMQURL)
		consumer := queue.NewConsumer(cfg.RabbitMQURL, mailer.UserRegistered, log)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("queue consumer stopped", "err", err)
			}
		}()
	}

	userService := service.NewUserService(users, hasher, tokens, notifier, cfg.ClientHost, log)
	gateway := payment.NewClient(cfg.Midtrans.TransactionURL, cfg.Midtrans.ServerKey, cfg.Midtrans.Timeout)
	orderService := service.NewOrderService(tickets, orders, gateway)

	e := router.New(log, router.Handlers{
		Health:     handler.Health(db),
		Auth:       handler.NewAuthHandler(userService),
		Categories: handler.NewCategoryHandler(categories),
		Events:     handler.NewEventHandler(events),
		Tickets:    handler.NewTicketHandler(tickets),
		Orders:     handler.NewOrderHandler(orderService, orders),
	}, router.Guards{
		Tokens:     tokens,
		RateLimit:  middleware.NewTokenBucket(cfg.RateLimit, rdb, log),
		Cache:      middleware.NewRedisCache(cfg.Cache, rdb, log),
		Invalidate: middleware.NewCacheInvalidator(cfg.Cache, rdb, log),
	})

	addr := ":" + cfg.Port
	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	userService.Wait()
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
