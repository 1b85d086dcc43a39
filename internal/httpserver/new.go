package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-input/internal/middleware"
	smartinputHTTP "smart-task-input/internal/smartinput/delivery/http"
	tgDelivery "smart-task-input/internal/smartinput/delivery/telegram"
	"smart-task-input/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	startedAt   time.Time

	// Smart input domain
	smartInputHandler smartinputHTTP.Handler
	telegramHandler   tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int // 0 disables rate limiting

	// Smart input domain
	SmartInputHandler smartinputHTTP.Handler
	TelegramHandler   tgDelivery.Handler // optional
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		startedAt:         time.Now(),
		smartInputHandler: cfg.SmartInputHandler,
		telegramHandler:   cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, cfg.RateLimitPerMin)
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.smartInputHandler == nil {
		return errors.New("smart input handler is required")
	}
	return nil
}
