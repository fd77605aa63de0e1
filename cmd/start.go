package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"econ-cdn/core/loader"
	"econ-cdn/core/logger"
	"econ-cdn/core/metrics"
	"econ-cdn/core/middleware/auth"
	"econ-cdn/core/middleware/rayid"
	catalogfeature "econ-cdn/feature/catalog"
	"econ-cdn/feature/integrity"
	"econ-cdn/feature/items"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "econ-cdn/docs/swagger"
)

// @title econ-cdn API
// @version 1.0
// @description Resolves economy item display names to content-addressed CDN image URLs.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the CDN resolver server",
	Long: `Loads the catalog, starts the periodic catalog refresh and serves the HTTP API
with every enabled feature.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// The server starts without a snapshot when the first load fails; lookups
		// answer 503 until a refresh succeeds.
		if _, err := rt.store.Refresh(ctx); err != nil {
			logg.Error("Initial catalog load failed", zap.Error(err))
		}

		catalogSvc := catalogfeature.NewService(rt.store, rt.cfg.Catalog.RefreshInterval(), logg)
		go catalogSvc.Run(ctx)

		itemsSvc := items.NewService(rt.store, rt.assets, rt.builder, rt.cfg.Features, rt.db, logg)

		mgr := loader.NewManager(logg)
		mgr.Register(items.NewFeature(itemsSvc))
		mgr.Register(catalogfeature.NewFeature(catalogSvc))
		mgr.Register(integrity.NewFeature(rt.client, rt.cfg.Storage.Bucket, integrity.Options{
			Catalog:     rt.cfg.Catalog,
			AssetPrefix: rt.cfg.Assets.Prefix,
			Store:       rt.store,
			Assets:      rt.assets,
		}, rt.db, logg))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           rt.cfg.Server.ReadTimeout(),
			WriteTimeout:          rt.cfg.Server.WriteTimeout(),
		})

		// RayID first so every later log line carries it
		app.Use(rayid.New())

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

		app.Use(metrics.Middleware())

		// Public endpoints
		app.Get("/metrics", metrics.Handler())
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
			errCh <- app.Listen(rt.cfg.Server.Address())
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
