package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"kube-query-agent/internal/model"
	"kube-query-agent/internal/query/repository"
	"kube-query-agent/pkg/llmprovider"
	"kube-query-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	rateLimitPerMin int

	// Query domain
	clusterRepo      repository.ClusterRepository
	llm              *llmprovider.Manager
	defaultNamespace string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int

	// Query domain
	ClusterRepo      repository.ClusterRepository
	LLM              *llmprovider.Manager // nil disables the gateway fallback
	DefaultNamespace string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	mode := cfg.Mode
	if cfg.Environment == string(model.EnvironmentProduction) {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             mode,
		environment:      cfg.Environment,
		rateLimitPerMin:  cfg.RateLimitPerMin,
		clusterRepo:      cfg.ClusterRepo,
		llm:              cfg.LLM,
		defaultNamespace: cfg.DefaultNamespace,
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
	if srv.clusterRepo == nil {
		return errors.New("cluster repository is required")
	}
	return nil
}
