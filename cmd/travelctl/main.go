// Package main is travelctl, the command line client of the travel booking
// API. Every invocation rebuilds its stores from persisted storage, so the
// last search and the signed-in session carry over between runs.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/flight-search/travel-booking-client/internal/adapter/api"
	"github.com/flight-search/travel-booking-client/internal/adapter/storage"
	"github.com/flight-search/travel-booking-client/internal/config"
	"github.com/flight-search/travel-booking-client/internal/directory"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
	"github.com/flight-search/travel-booking-client/internal/notify"
	"github.com/flight-search/travel-booking-client/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return rootCommand().execute(ctx, args, &env{cfg: cfg, stdout: stdout, stderr: stderr})
}

// env is what a command runs with. The app is built lazily so that help
// output never touches storage or the network.
type env struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

// app wires config, storage, the REST client and the stores for one
// invocation.
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	out       io.Writer
	store     storage.Store
	notifier  notify.Sink
	client    *api.Client
	tokens    *session.TokenHolder
	validator *domain.Validator
}

func (e *env) open(ctx context.Context) (*app, error) {
	log := logger.NewWithOutput(logger.Config{
		Level:       e.cfg.Logging.Level,
		Format:      e.cfg.Logging.Format,
		ServiceName: "travelctl",
	}, e.stderr)

	store, err := storage.Open(ctx, storage.Config{
		Backend:        e.cfg.Storage.Backend,
		Dir:            e.cfg.Storage.Dir,
		RedisAddr:      e.cfg.Storage.Redis.Addr,
		RedisPassword:  e.cfg.Storage.Redis.Password,
		RedisDB:        e.cfg.Storage.Redis.DB,
		RedisKeyPrefix: e.cfg.Storage.Redis.KeyPrefix,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	notifier := notify.Multi{notify.NewLogSink(log), notify.NewWriterSink(e.stderr)}
	tokens := session.NewTokenHolder(ctx, store, session.WithLogger(log))

	client, err := api.New(api.Config{
		BaseURL:           e.cfg.API.BaseURL,
		Timeout:           e.cfg.API.Timeout,
		RequestsPerSecond: e.cfg.API.RateLimitRPS,
		Burst:             e.cfg.API.RateLimitBurst,
		UserAgent:         e.cfg.API.UserAgent,
	},
		api.WithTokenSource(tokens),
		api.WithNotifier(notifier),
		api.WithLogger(log),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	validator, err := domain.NewValidator(nil)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &app{
		cfg:       e.cfg,
		log:       log,
		out:       e.stdout,
		store:     store,
		notifier:  notifier,
		client:    client,
		tokens:    tokens,
		validator: validator,
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func (a *app) sessionOptions() []session.Option {
	opts := []session.Option{session.WithNotifier(a.notifier), session.WithLogger(a.log)}
	if a.cfg.Directory.StaleResponseGuard {
		opts = append(opts, session.WithStaleResponseGuard())
	}
	return opts
}

func (a *app) searchStore(ctx context.Context) *session.SearchStore {
	return session.NewSearchStore(ctx, a.client, a.store, a.sessionOptions()...)
}

func (a *app) authStore(ctx context.Context) *session.AuthStore {
	return session.NewAuthStore(ctx, a.client, a.tokens, a.store, a.sessionOptions()...)
}

// directory returns a listing controller after checking that the stored
// session belongs to an admin.
func (a *app) directory(ctx context.Context) (*directory.Controller, error) {
	auth := a.authStore(ctx)
	auth.Initialize(ctx)
	if !auth.State().Authenticated {
		return nil, fmt.Errorf("not signed in: run travelctl login first")
	}
	if !auth.IsAdmin() {
		return nil, fmt.Errorf("admin access required")
	}

	opts := []directory.Option{
		directory.WithNotifier(a.notifier),
		directory.WithLogger(a.log),
		directory.WithPageSize(a.cfg.Directory.PageSize),
	}
	if a.cfg.Directory.StaleResponseGuard {
		opts = append(opts, directory.WithStaleResponseGuard())
	}
	return directory.New(a.client, opts...), nil
}
