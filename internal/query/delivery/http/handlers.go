package http

import (
	"github.com/gin-gonic/gin"

	"kube-query-agent/pkg/response"
)

// Answer godoc
// @Summary     Answer a cluster query
// @Description Accepts a free-text question about the cluster and returns a one-sentence answer.
// @Tags        Query
// @Accept      json
// @Produce     json
// @Param       body body answerReq true "Query"
// @Success     200 {object} answerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/query [POST]
func (h *handler) Answer(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnswerReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Answer(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnswerResp(output))
}
