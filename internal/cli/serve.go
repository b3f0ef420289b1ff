package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"eventlineup/config"
	"eventlineup/internal/adapters/email"
	"eventlineup/internal/adapters/export"
	"eventlineup/internal/adapters/webhook"
	"eventlineup/internal/clock"
	deliveryhttp "eventlineup/internal/delivery/http"
	"eventlineup/internal/delivery/http/controllers"
	"eventlineup/internal/delivery/http/middleware"
	"eventlineup/internal/domain"
	"eventlineup/internal/pkg/metrics"
	"eventlineup/internal/repository/postgres"
	"eventlineup/internal/services"
	"eventlineup/internal/worker"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 15 * time.Second
	webhookTokenTTL = 15 * time.Minute
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Migrate bool
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the export worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Migrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions) error {
	cfg, logger := opts.Config, opts.Logger

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if opts.Migrate {
		applied, err := postgres.Migrate(ctx, db)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", "count", len(applied))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewWithRegistry(reg)
	clk := clock.NewSystem()

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	performanceRepo := postgres.NewPerformanceRepository(db)
	artistRepo := postgres.NewArtistRepository(db)
	locker := postgres.NewEventLocker(db)

	// Export pipeline
	emailSvc, err := newEmailService(cfg, logger)
	if err != nil {
		return err
	}
	var signer *webhook.Signer
	if cfg.Webhook.SigningSecret != "" {
		signer = webhook.NewSigner(cfg.Webhook.SigningSecret, webhookTokenTTL, clk)
	}
	queue := worker.NewExportQueue(cfg.Export.QueueSize, m)
	exportWorker := worker.NewExportWorker(queue, worker.ExportWorkerConfig{
		Writer:      export.NewCSVWriter(cfg.Export.Dir, cfg.Export.BaseURL, clk),
		Notifier:    webhook.NewHTTPNotifier(&http.Client{Timeout: cfg.Webhook.Timeout}, signer),
		Email:       emailSvc,
		NotifyEmail: cfg.Export.NotifyEmail,
		Logger:      logger.With("component", "export_worker"),
		Metrics:     m,
	})
	go exportWorker.Start(ctx)
	defer exportWorker.Stop()

	// Services
	eventSvc := services.NewEventService(eventRepo, performanceRepo, locker, clk, m, cfg.RequestTimeout)
	performanceSvc := services.NewPerformanceService(performanceRepo, eventRepo, artistRepo, locker, clk, m, cfg.RequestTimeout)
	artistSvc := services.NewArtistService(artistRepo, clk, cfg.RequestTimeout)
	exportSvc := services.NewExportService(eventRepo, queue, clk, logger, cfg.RequestTimeout)

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Events:       controllers.NewEventController(logger, eventSvc, exportSvc),
		Performances: controllers.NewPerformanceController(logger, performanceSvc),
		Artists:      controllers.NewArtistController(logger, artistSvc),
		Health:       controllers.NewHealthController(db),
	}, reg)
	if prefix, ok := mediaPrefix(cfg.Export.BaseURL); ok {
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.Export.Dir))))
	}

	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.LoggingMiddleware(logger,
			middleware.PrometheusMiddleware(m, mux)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newEmailService(cfg *config.Config, logger *slog.Logger) (domain.EmailService, error) {
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("email templates: %w", err)
	}
	return services.NewEmailService(mailer, renderer, logger), nil
}

// mediaPrefix returns the path under which exports are served when the base URL is a local path.
func mediaPrefix(baseURL string) (string, bool) {
	trimmed := strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "/") || trimmed == "" {
		return "", false
	}
	return trimmed + "/", true
}
