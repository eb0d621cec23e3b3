package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"kube-query-agent/internal/middleware"
	queryHTTP "kube-query-agent/internal/query/delivery/http"
	queryUC "kube-query-agent/internal/query/usecase"
)

// setupQueryDomain initializes the query domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, deps...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupQueryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := queryUC.New(srv.l, srv.clusterRepo, srv.llm, srv.defaultNamespace)

	h := queryHTTP.New(srv.l, uc)

	// Registers POST /api/v1/query
	queryHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Query domain registered")
	return nil
}
