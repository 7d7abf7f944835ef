package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/http/handlers"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/http/middleware"
)

// RouterConfig carries the pieces BuildRouter wires together.
type RouterConfig struct {
	Auth  *handlers.AuthHandlers
	Users *handlers.UserHandlers
	Tests *handlers.TestHandlers
	WS    *handlers.WSHandler
	JWT   *middleware.AuthMW

	// MaxUploadBytes caps multipart registration bodies.
	MaxUploadBytes int64
	// UploadDir, when non-empty, is served at /uploads for locally
	// stored files. S3-backed deployments leave it empty.
	UploadDir string
}

func BuildRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	limit := middleware.MaxBodyBytes(cfg.MaxUploadBytes)
	r.POST("/register", limit, cfg.Auth.Register)

	api := r.Group("/api")
	api.POST("/register", limit, cfg.Auth.Register)
	api.POST("/login", cfg.Auth.Login)

	v := api.Group("/").Use(cfg.JWT.WithJWT())
	v.GET("/user", cfg.Users.Me)
	v.GET("/tests", cfg.Tests.List)
	v.GET("/tests/:id", cfg.Tests.Get)
	v.POST("/tests/:id/submit", cfg.Tests.Submit)

	r.GET("/ws", cfg.WS.Connect)

	if cfg.UploadDir != "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	return r
}
