package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/config"
	httpx "github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/http"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/http/handlers"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/http/middleware"
)

// Run wires the portal together and serves it until the listener fails.
func Run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := SeedTests(context.Background(), c.TestRepo, logger); err != nil {
		return err
	}

	uploadDir := ""
	if cfg.StorageBackend != "s3" {
		uploadDir = cfg.UploadDir
	}

	r := httpx.BuildRouter(httpx.RouterConfig{
		Auth:           handlers.NewAuthHandlers(c.RegistrationSvc, c.AuthSvc, logger),
		Users:          handlers.NewUserHandlers(c.AuthSvc, logger),
		Tests:          handlers.NewTestHandlers(c.TestSvc, logger),
		WS:             handlers.NewWSHandler(logger),
		JWT:            middleware.NewAuthMW(c.TokenSvc),
		MaxUploadBytes: cfg.MaxUploadBytes,
		UploadDir:      uploadDir,
	})

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}
