package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-input/internal/smartinput"
	"smart-task-input/pkg/log"
)

// Handler is the public interface for the smart input HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Draft(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc smartinput.UseCase
}

// New creates a new HTTP handler for the smart input domain.
func New(l log.Logger, uc smartinput.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
