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

	"github.com/AdamBeresnev/lol-cup/internal/config"
	"github.com/AdamBeresnev/lol-cup/internal/db"
	"github.com/AdamBeresnev/lol-cup/internal/payment"
	"github.com/AdamBeresnev/lol-cup/internal/service"
	"github.com/AdamBeresnev/lol-cup/internal/store"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(); err != nil {
		slog.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessionManager := scs.New()
	sessionManager.Lifetime = 24 * time.Hour

	tournamentStore, closeStore, err := openStore(ctx, cfg, sessionManager)
	if err != nil {
		return err
	}
	defer closeStore()

	var gateway payment.Gateway
	if cfg.PaymentsEnabled() {
		gateway = payment.NewMercadoPagoClient(cfg.MercadoPagoBaseURL, cfg.MercadoPagoAccessToken)
	} else {
		slog.Warn("MERCADOPAGO_ACCESS_TOKEN not set, player registration is disabled")
	}

	tournaments := service.NewTournamentService(tournamentStore)
	router := newRouter(&app{
		tournaments:    tournaments,
		registrations:  service.NewRegistrationService(tournaments, gateway, cfg.PaymentMethodID),
		sessionManager: sessionManager,
		allowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "address", server.Addr, "store", cfg.StoreDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server", "timeout", shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openStore picks the persistence backend. The sqlite backend also keeps
// the sessions, the others leave scs on its in-memory store.
func openStore(ctx context.Context, cfg *config.Config, sessionManager *scs.SessionManager) (store.TournamentStore, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		database, err := db.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(database.DB); err != nil {
			database.Close()
			return nil, nil, err
		}
		sessions := sqlite3store.New(database.DB)
		sessionManager.Store = sessions
		closer := func() {
			sessions.StopCleanup()
			if err := database.Close(); err != nil {
				slog.Error("failed to close database", "error", err)
			}
		}
		return store.NewSQLiteStore(database), closer, nil

	case config.DriverS3:
		s3Store, err := store.NewS3Store(ctx, store.S3StoreConfig{
			Bucket:          cfg.S3Bucket,
			Key:             cfg.S3Key,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return s3Store, func() {}, nil

	default:
		jsonStore := store.NewJSONFileStore(cfg.DataFile)
		slog.Info("using JSON file store", "path", jsonStore.Path())
		return jsonStore, func() {}, nil
	}
}
