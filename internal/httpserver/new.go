package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/middleware"
	"smart-task-manager/internal/model"
	reminderHTTP "smart-task-manager/internal/reminder/delivery/http"
	taskHTTP "smart-task-manager/internal/task/delivery/http"
	"smart-task-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	mw middleware.Middleware

	taskHandler     taskHTTP.Handler
	reminderHandler reminderHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	Middleware middleware.Middleware

	TaskHandler     taskHTTP.Handler
	ReminderHandler reminderHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		taskHandler:     cfg.TaskHandler,
		reminderHandler: cfg.ReminderHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
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
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
