package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasudhaxkale/binance-trading-bot/internal/infra"
)

// Server hosts the order form front-end.
type Server struct {
	cfg    *infra.Config
	engine *gin.Engine
}

// NewServer wires the routes onto a gin engine.
func NewServer(cfg *infra.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	RegisterRoutes(engine, NewOrderHandler(cfg.API.Binance.Testnet))

	return &Server{cfg: cfg, engine: engine}
}

// RegisterRoutes mounts the form and the order API.
func RegisterRoutes(router *gin.Engine, h *OrderHandler) {
	router.GET("/", h.Index)

	api := router.Group("/api")
	{
		api.POST("/orders", h.PlaceOrder)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Web.ListenAddr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Web form available", slog.String("addr", "http://"+s.cfg.Web.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
