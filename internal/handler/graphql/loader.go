package graphql

import (
	"context"
	"sync"

	"github.com/empdash/empdash-backend-go/internal/domain/employee"
)

// EmployeeLoader memoizes single-record lookups for the lifetime of one
// request. The GraphQL handler installs a fresh loader per request; it must
// never be shared across requests. Misses are cached too, so repeated
// lookups of an unknown id hit the store once.
type EmployeeLoader struct {
	repo  employee.EmployeeRepository
	mu    sync.Mutex
	cache map[string]*employee.Employee
}

func NewEmployeeLoader(repo employee.EmployeeRepository) *EmployeeLoader {
	return &EmployeeLoader{
		repo:  repo,
		cache: make(map[string]*employee.Employee),
	}
}

// Load returns the record for id, or nil when it does not exist.
func (l *EmployeeLoader) Load(ctx context.Context, id string) (*employee.Employee, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.cache[id]; ok {
		return cached, nil
	}

	found, err := l.repo.GetByIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	l.cache[id] = found[0]
	return found[0], nil
}

// Clear drops the cache entry for id. Called after a mutation so the next
// lookup within the same request sees the updated record.
func (l *EmployeeLoader) Clear(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.cache, id)
}

type loaderCtxKey struct{}

func WithLoader(ctx context.Context, loader *EmployeeLoader) context.Context {
	return context.WithValue(ctx, loaderCtxKey{}, loader)
}

func LoaderFromContext(ctx context.Context) (*EmployeeLoader, bool) {
	loader, ok := ctx.Value(loaderCtxKey{}).(*EmployeeLoader)
	return loader, ok
}
