package catalog

import (
	"context"
	"errors"
	"sync"
)

var ErrItemNotFound = errors.New("catalog item not found")

// InMemoryRepository keeps the catalog in process memory. Used when no
// database is configured and by tests.
type InMemoryRepository struct {
	mu         sync.RWMutex
	items      []Item
	categories []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// NewSeededRepository returns an in-memory repository pre-loaded with the
// default Aarka menu.
func NewSeededRepository() *InMemoryRepository {
	r := NewInMemoryRepository()
	_ = r.ReplaceAll(context.Background(), DefaultItems(), DefaultCategories())
	return r
}

func (r *InMemoryRepository) ListItems(ctx context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Item, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *InMemoryRepository) ListCategories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]string, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}

func (r *InMemoryRepository) GetItem(ctx context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *InMemoryRepository) ReplaceAll(ctx context.Context, items []Item, categories []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]Item, len(items))
	copy(r.items, items)
	r.categories = make([]string, len(categories))
	copy(r.categories, categories)
	return nil
}
