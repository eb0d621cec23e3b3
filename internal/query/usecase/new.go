package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"kube-query-agent/internal/query"
	"kube-query-agent/internal/query/repository"
	"kube-query-agent/pkg/llmprovider"
	pkgLog "kube-query-agent/pkg/log"
)

// gatewayCacheSize bounds the memoized gateway classifications. Only the
// text-to-intent mapping is cached; cluster reads never are.
const gatewayCacheSize = 256

type implUseCase struct {
	l                pkgLog.Logger
	repo             repository.ClusterRepository
	llm              *llmprovider.Manager // nil when no gateway is configured
	gatewayCache     *lru.Cache[string, classification]
	defaultNamespace string
}

// classification is a cached gateway result.
type classification struct {
	intent query.Intent
	slots  query.Slots
}

// New creates a new query UseCase instance. llm may be nil, in which case
// queries not covered by the pattern rules classify as unknown.
func New(
	l pkgLog.Logger,
	repo repository.ClusterRepository,
	llm *llmprovider.Manager,
	defaultNamespace string,
) *implUseCase {
	if defaultNamespace == "" {
		defaultNamespace = DefaultNamespace
	}

	cache, _ := lru.New[string, classification](gatewayCacheSize)

	return &implUseCase{
		l:                l,
		repo:             repo,
		llm:              llm,
		gatewayCache:     cache,
		defaultNamespace: defaultNamespace,
	}
}
