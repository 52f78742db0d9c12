// Package server wires the control plane together: engine dispatcher,
// webview engine, registry, render loop driver and the HTTP/WebSocket API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/Francexi/browserhost/internal/api/http"
	"github.com/Francexi/browserhost/internal/api/ws"
	"github.com/Francexi/browserhost/internal/engine"
	"github.com/Francexi/browserhost/internal/engine/webview"
	"github.com/Francexi/browserhost/internal/infrastructure/config"
	"github.com/Francexi/browserhost/internal/infrastructure/logging"
	"github.com/Francexi/browserhost/internal/infrastructure/monitoring"
	"github.com/Francexi/browserhost/internal/registry"
	"github.com/Francexi/browserhost/internal/shared/types"
	"github.com/Francexi/browserhost/internal/source"
)

// Server hosts the embedded-content control plane.
type Server struct {
	cfg     *config.Config
	logger  *logging.Logger
	metrics *monitoring.Metrics

	dispatcher *engine.Dispatcher
	reg        *registry.Registry
	driver     *source.Driver
	hub        *ws.Hub

	httpSrv *http.Server
	cancel  context.CancelFunc
}

// New builds a fully wired server from configuration.
func New(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	var err error
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else if logger, err = logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: false,
		OutputPaths: []string{"stdout"},
	}); err != nil {
		return nil, err
	}

	logger.Info("initializing browserhost",
		zap.String("port", cfg.Server.Port),
		zap.Bool("local_file_url", cfg.Engine.LocalFileURL),
		zap.Bool("shared_texture", cfg.Engine.SharedTexture),
	)

	promReg := prometheus.NewRegistry()
	metrics := monitoring.NewMetricsOn(promReg)

	dispatcher := engine.NewDispatcher(logger.Logger).WithMetrics(metrics)
	eng := webview.New(logger.Logger, cfg.Engine.ScriptTimeout)
	reg := registry.New().WithMetrics(metrics)
	driver := source.NewDriver(cfg.Render.FrameRate, logger)
	hub := ws.NewHub(logger, metrics)
	reg.SetObserver(hub.Observer())

	caps := types.Capabilities{
		LocalFileURL:  cfg.Engine.LocalFileURL,
		SharedTexture: cfg.Engine.SharedTexture,
	}

	newSource := func() *source.Source {
		return source.New(source.Config{
			Logger:       logger,
			Dispatcher:   dispatcher,
			Engine:       eng,
			Registry:     reg,
			Capabilities: caps,
			Metrics:      metrics,
		})
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"instances": reg.Len(),
			"uptime":    metrics.Uptime().String(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))
	router.GET("/events/stream", hub.HandleConnection)

	apihttp.NewHandler(driver, reg, newSource, logger).Register(router)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,

		dispatcher: dispatcher,
		reg:        reg,
		driver:     driver,
		hub:        hub,

		httpSrv: &http.Server{
			Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
			Handler: router,
		},
	}, nil
}

// Run starts the render loop and serves the control API until Close.
func (s *Server) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.driver.Run(ctx)

	s.logger.Info("control API listening", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close tears everything down: API first, then instances, then the engine
// thread.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.httpSrv.Shutdown(ctx)

	if s.cancel != nil {
		s.cancel()
	}

	for _, src := range s.driver.List() {
		s.driver.Detach(src.ID())
		src.Close()
	}

	s.hub.Close()
	s.dispatcher.Shutdown()
	s.logger.Info("browserhost stopped")
	return err
}
