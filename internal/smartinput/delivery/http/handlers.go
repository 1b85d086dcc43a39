package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "smart-task-input/pkg/errors"
	"smart-task-input/pkg/response"
)

// Parse godoc
// @Summary     Parse a smart input line
// @Description Extracts title, date, time, project, label, priority and notes from one line of text.
// @Description Span and segment offsets count runes. Empty text returns an empty result.
// @Tags        SmartInput
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/smart-input/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		h.l.Warnf(ctx, "smartinput.http.Parse: bad request: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Parse", err)
		return
	}

	response.OK(c, h.newParseResp(req.Text, output))
}

// Draft godoc
// @Summary     Build a task draft
// @Description Parses the text and returns the task it describes with a resolved due date.
// @Description Lines with nothing left for a title are rejected.
// @Tags        SmartInput
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200  {object} draftResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unprocessable Entity - no title"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/smart-input/drafts [POST]
func (h *handler) Draft(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		h.l.Warnf(ctx, "smartinput.http.Draft: bad request: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Draft(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Draft", err)
		return
	}

	response.OK(c, h.newDraftResp(output))
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	mapped := h.mapError(err)
	if mapped == pkgErrors.ErrInternalServerError {
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	h.l.Warnf(ctx, "%s: %v", op, err)
	response.Error(c, mapped, nil)
}
