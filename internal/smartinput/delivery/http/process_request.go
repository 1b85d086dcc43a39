package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates a parse or draft request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
