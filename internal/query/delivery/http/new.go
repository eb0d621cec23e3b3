package http

import (
	"github.com/gin-gonic/gin"

	"kube-query-agent/internal/query"
	"kube-query-agent/pkg/log"
)

// Handler is the public interface for the query HTTP delivery layer.
type Handler interface {
	Answer(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc query.UseCase
}

// New creates a new HTTP handler for the query domain.
func New(l log.Logger, uc query.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
