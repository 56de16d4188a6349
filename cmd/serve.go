package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hogger/core/config"
	"hogger/core/database"
	"hogger/core/loader"
	"hogger/core/logger"
	"hogger/core/middleware/auth"
	"hogger/core/middleware/rayid"
	"hogger/core/reconcile"
	"hogger/core/storage"
	"hogger/feature/manifest"
	"hogger/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// serveCmd starts the read-only status server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the status server",
	Long: `Starts the HTTP status server exposing the lock state, a preview of the
plan for the configured manifests, and Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional; status routes are disabled without it)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg = logg.With(zap.String("database", cfg.Database.Name))
			logg.Info("Connected to world database")
		}

		registry, err := newRegistry()
		if err != nil {
			logg.Fatal("Failed to register entity types", zap.Error(err))
		}

		// 4. Metrics
		promReg := prometheus.NewRegistry()
		promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := reconcile.NewMetrics(promReg)

		// 5. Manifest source
		source, err := manifestSource(cfg, registry, logg)
		if err != nil {
			logg.Fatal("Failed to create manifest source", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		svc := status.NewService(db, registry, source, reconcile.NewPreviewCache(cfg.Server.PlanCacheTTL()), metrics, logg)
		mgr.Register(status.NewFeature(svc, promReg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Loaded features", zap.Strings("features", loaded))

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		if db != nil {
			_ = database.Close(db)
		}
	},
}

// manifestSource reads the configured manifests on every call.
func manifestSource(cfg *config.Config, registry *reconcile.Registry, logg *zap.Logger) (status.Source, error) {
	l := manifest.NewLoader(registry, factories(), logg)
	if !cfg.Manifest.FromBucket {
		return func(ctx context.Context) ([]reconcile.Entity, error) {
			return l.LoadPath(cfg.Manifest.Path)
		}, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) ([]reconcile.Entity, error) {
		return l.LoadBucket(ctx, client, cfg.Storage.Bucket, cfg.Manifest.BucketPrefix)
	}, nil
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
