package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-input/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.RateLimit(), h.Parse)
	rg.POST("/drafts", mw.RateLimit(), h.Draft)
}
