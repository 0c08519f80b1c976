package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"jaktrip/cmd/fx/config_fx"
	"jaktrip/cmd/fx/controllers_fx"
	"jaktrip/cmd/fx/db_fx"
	"jaktrip/cmd/fx/destinations_fx"
	"jaktrip/cmd/fx/memcache_fx"
	"jaktrip/cmd/fx/rundown_fx"
	"jaktrip/internal/api/controllers"
	"jaktrip/internal/config"
	"jaktrip/pkg/logger"
	"jaktrip/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		destinations_fx.Module,
		rundown_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	log := logger.GetLogger()
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("Starting HTTP server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalw("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			err := srv.Shutdown(ctx)
			_ = logger.Close()
			return err
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	destinationController *controllers.DestinationController,
	rundownController *controllers.RundownController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	controllers.RegisterRoutes(r, destinationController, rundownController)

	return r
}
