package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"kube-query-agent/internal/query"
)

// processAnswerReq binds and validates the query request body.
func (h *handler) processAnswerReq(c *gin.Context) (answerReq, error) {
	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Query) == "" {
		return req, query.ErrEmptyQuery
	}
	return req, nil
}
