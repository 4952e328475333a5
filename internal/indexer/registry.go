package indexer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/store"
)

// ProjectContext is the addressing context bound to one deployed project
// contract. The Standard and Seeded handler code is shared; the context
// tells it which Project row to update and which variant-specific reads
// (seed lookup) apply.
type ProjectContext struct {
	Address        string
	Implementation domain.Implementation
}

// Registry maps contract addresses to their project context. The factory
// handler registers a context when a project is deployed; on restart the
// registry is re-seeded from the store.
type Registry struct {
	mu       sync.RWMutex
	projects map[string]ProjectContext
}

// NewRegistry creates an empty project registry
func NewRegistry() *Registry {
	return &Registry{projects: make(map[string]ProjectContext)}
}

// Register binds a deployed contract address to its project context
func (r *Registry) Register(pctx ProjectContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[strings.ToLower(pctx.Address)] = pctx
}

// Lookup resolves a contract address to its project context
func (r *Registry) Lookup(address string) (ProjectContext, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pctx, ok := r.projects[strings.ToLower(address)]
	return pctx, ok
}

// LoadFromStore re-seeds the registry with every project already tracked
func (r *Registry) LoadFromStore(ctx context.Context, st store.Store) error {
	projects, err := st.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, project := range projects {
		r.projects[project.ID] = ProjectContext{
			Address:        project.ID,
			Implementation: project.Implementation,
		}
	}
	return nil
}
