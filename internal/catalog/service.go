package catalog

import (
	"context"
	"sync"
)

// Categories mined on the review screen for "complete your order"
// suggestions.
var suggestionCategories = []string{"Beverages", "Accompaniments", "Bread"}

// Service serves the catalog from an immutable in-memory snapshot. The
// snapshot is replaced wholesale on Load, never mutated, so kiosk
// sessions always see a consistent menu.
type Service struct {
	repo Repository

	mu         sync.RWMutex
	items      []Item
	categories []string
	byID       map[string]Item
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load reads the catalog from the repository, validates it, and swaps it
// in as the new snapshot.
func (s *Service) Load(ctx context.Context) error {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return err
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return err
	}

	if err := Validate(items, categories); err != nil {
		return err
	}

	byID := make(map[string]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	s.mu.Lock()
	s.items = items
	s.categories = categories
	s.byID = byID
	s.mu.Unlock()

	return nil
}

func (s *Service) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Service) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]string, len(s.categories))
	copy(categories, s.categories)
	return categories
}

func (s *Service) Find(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.byID[id]
	return item, ok
}

// DefaultCategory is the category a fresh session starts on.
func (s *Service) DefaultCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.categories) == 0 {
		return ""
	}
	return s.categories[0]
}

// Suggestions returns up to limit items from the sides-and-drinks
// categories, in catalog order.
func (s *Service) Suggestions(limit int) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(suggestionCategories))
	for _, c := range suggestionCategories {
		wanted[c] = true
	}

	var suggestions []Item
	for _, item := range s.items {
		if !wanted[item.Category] {
			continue
		}
		suggestions = append(suggestions, item)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}
