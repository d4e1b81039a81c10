package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	coachHTTP "financial-coach/internal/coach/delivery/http"
	"financial-coach/internal/middleware"
	"financial-coach/pkg/log"
)

// Pinger reports whether a dependency can serve traffic.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Coach domain
	coachHandler coachHTTP.Handler
	middleware   middleware.Middleware
	store        Pinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Coach domain
	CoachHandler coachHTTP.Handler
	Middleware   middleware.Middleware
	// Store is pinged by /ready. Optional.
	Store Pinger
}

// New creates a new HTTPServer instance and registers all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: 10 * time.Second,
		coachHandler:    cfg.CoachHandler,
		middleware:      cfg.Middleware,
		store:           cfg.Store,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.coachHandler == nil {
		return errors.New("coach handler is required")
	}
	return nil
}
