package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"yelpcamp/internal/account"
	"yelpcamp/internal/api"
	"yelpcamp/internal/api/handler/v1handler"
	"yelpcamp/internal/authz"
	"yelpcamp/internal/campground"
	"yelpcamp/internal/config"
	"yelpcamp/internal/notifier"
	"yelpcamp/internal/passwordreset"
	"yelpcamp/internal/session"
	"yelpcamp/internal/worker"
	"yelpcamp/pkg/cache/redis"
	"yelpcamp/pkg/geocoder"
	"yelpcamp/pkg/geocoder/google"
	"yelpcamp/pkg/imagestore/s3"
	"yelpcamp/pkg/logger"
	"yelpcamp/pkg/mailer/smtp"
	"yelpcamp/pkg/metrics"
	"yelpcamp/pkg/storage/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupMeterProvider exports otel instruments through the default Prometheus
// registry and installs the provider globally.
func setupMeterProvider(ctx context.Context) (*sdkmetric.MeterProvider, func(ctx context.Context)) {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	return mp, func(ctx context.Context) {
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
		}
	}
}

func getRedis(ctx context.Context, cfg *config.Config) (*redis.Cache, func()) {
	c, err := redis.New(ctx, redis.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return c, func() {
		logger.Info(ctx, "closing redis client...")
		if err := c.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// getGeocoder returns nil when no API key is configured, which disables
// geocoding.
func getGeocoder(ctx context.Context, cfg *config.Config, c *redis.Cache) geocoder.Geocoder {
	if cfg.Geocoder.APIKey == "" {
		logger.Warn(ctx, "geocoder API key is not set, campgrounds will be stored without coordinates")

		return nil
	}

	return google.New(nil, c, google.NewOptions(cfg))
}

func getMailer(ctx context.Context, cfg *config.Config) *smtp.Mailer {
	mail, err := smtp.New(smtp.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create mailer", zap.Error(err))
	}

	return mail
}

func getServices(ctx context.Context,
	cfg *config.Config,
	strg *postgres.PgSQL,
	c *redis.Cache,
	mail *smtp.Mailer,
	mp *sdkmetric.MeterProvider) api.Deps {
	issuer, err := session.NewIssuer(session.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create session issuer", zap.Error(err))
	}
	images, err := s3.New(ctx, s3.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create image store", zap.Error(err))
	}

	notifierOpts := notifier.NewOptions(cfg)
	notifierOpts.MeterProvider = mp
	fanOut, err := notifier.New(strg, notifierOpts)
	if err != nil {
		logger.Fatal(ctx, "could not create notifier", zap.Error(err))
	}

	return api.Deps{
		Users:         strg,
		MeterProvider: mp,
		V1: v1handler.Deps{
			Campgrounds: campground.New(campground.Deps{
				Storage:  strg,
				Gate:     authz.New(strg),
				Notifier: fanOut,
				Geocoder: getGeocoder(ctx, cfg, c),
			}, campground.NewOptions(cfg)),
			Accounts:      account.New(strg, issuer, account.NewOptions(cfg)),
			PasswordReset: passwordreset.New(strg, mail, issuer, passwordreset.NewOptions(cfg)),
			Images:        images,
		},
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			c, closeCache := getRedis(ctx, cfg)
			defer closeCache()

			mp, stopMeter := setupMeterProvider(ctx)
			mail := getMailer(ctx, cfg)

			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, worker.Deps{Mailer: mail}, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, getServices(ctx, cfg, strg, c, mail, mp))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}

			stopMeter(shutdownCtx)
		},
	}

	return cmd
}
