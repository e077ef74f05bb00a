package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/cashbook/internal/auth"
	"github.com/MrJamesThe3rd/cashbook/internal/cache"
	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/cashbook/memory"
	cashbookStore "github.com/MrJamesThe3rd/cashbook/internal/cashbook/store"
	"github.com/MrJamesThe3rd/cashbook/internal/category"
	categoryStore "github.com/MrJamesThe3rd/cashbook/internal/category/store"
	"github.com/MrJamesThe3rd/cashbook/internal/config"
	"github.com/MrJamesThe3rd/cashbook/internal/database"
	"github.com/MrJamesThe3rd/cashbook/internal/events"
	cashbookHttp "github.com/MrJamesThe3rd/cashbook/internal/http"
	cashbookHandler "github.com/MrJamesThe3rd/cashbook/internal/http/cashbook"
	categoryHandler "github.com/MrJamesThe3rd/cashbook/internal/http/category"
	recipientHandler "github.com/MrJamesThe3rd/cashbook/internal/http/recipient"
	"github.com/MrJamesThe3rd/cashbook/internal/importer"
	"github.com/MrJamesThe3rd/cashbook/internal/recipient"
	recipientStore "github.com/MrJamesThe3rd/cashbook/internal/recipient/store"
	"github.com/MrJamesThe3rd/cashbook/internal/skautis"
	"github.com/MrJamesThe3rd/cashbook/internal/telemetry"
)

// cashbookRepository is what both storage backends provide.
type cashbookRepository interface {
	cashbook.Repository
	cashbook.OwnerMapper
	category.TypeResolver
	skautis.OwnerResolver
	cashbookHandler.Cashbooks
}

type backend struct {
	cashbooks  cashbookRepository
	categories category.Repository
	recipients recipient.Repository
	close      func()
}

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.App.Name, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		return err
	}

	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("failed to flush traces", "error", err)
		}
	}()

	store, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	var (
		categoryCache   = cache.NewLRU[[]category.Category](cfg.Cache.Size, cfg.Cache.TTL)
		memberCache     = cache.NewLRU[[]string](cfg.Cache.Size, cfg.Cache.TTL)
		authenticator   = auth.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.Issuer)
		categoryService = category.NewService(store.categories, store.cashbooks, categoryCache)
		opts            = []cashbook.Option{cashbook.WithOwnerAccess(store.cashbooks, auth.Authorizer{})}
		members         recipient.MemberSource
	)

	if cfg.Skautis.URL != "" {
		client := skautis.NewClient(cfg.Skautis.URL, cfg.Skautis.Token, store.cashbooks,
			skautis.WithRateLimit(cfg.Skautis.RateLimit, cfg.Skautis.Burst))

		members = client
		opts = append(opts, cashbook.WithCategoryTotalsUpdater(client))
	} else {
		slog.Warn("SKAUTIS_URL not set, camp totals are not synchronised")
	}

	if cfg.AMQP.URL != "" {
		publisher, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			return err
		}
		defer publisher.Close()

		opts = append(opts, cashbook.WithEventPublisher(publisher))
	}

	var (
		cashbookService  = cashbook.NewService(store.cashbooks, categoryService, opts...)
		recipientService = recipient.NewService(store.recipients, members, memberCache)
		importService    = importer.NewService()
	)

	var (
		cashbookH  = cashbookHandler.NewHandler(cashbookService, store.cashbooks, auth.Authorizer{}, importService)
		categoryH  = categoryHandler.NewHandler(categoryService)
		recipientH = recipientHandler.NewHandler(recipientService)
	)

	router := cashbookHttp.New(cashbookHttp.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Authenticate:   authenticator.Middleware,
	}, cashbookH, categoryH, recipientH)

	go cleanCaches(ctx, cfg.Cache.TTL, categoryCache, memberCache)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "backend", cfg.App.Backend)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	return nil
}

func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	if cfg.App.Backend == config.BackendMemory {
		repo := memory.NewRepository()

		slog.Info("using in-memory backend, data is lost on restart")

		return &backend{
			cashbooks:  repo,
			categories: category.NewStaticRepository(category.Defaults),
			recipients: recipient.NewLedgerRepository(repo),
			close:      func() {},
		}, nil
	}

	connStr := cfg.ConnectionString()

	if err := database.Migrate(connStr); err != nil {
		return nil, err
	}

	db, err := database.New(ctx, connStr)
	if err != nil {
		return nil, err
	}

	return &backend{
		cashbooks:  cashbookStore.New(db),
		categories: categoryStore.New(db),
		recipients: recipientStore.New(db),
		close:      func() { db.Close() },
	}, nil
}

type expiring interface {
	CleanExpired() int
}

func cleanCaches(ctx context.Context, every time.Duration, caches ...expiring) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, c := range caches {
				if n := c.CleanExpired(); n > 0 {
					slog.Debug("evicted expired cache entries", "count", n)
				}
			}
		}
	}
}
