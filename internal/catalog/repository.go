package catalog

import "context"

// Repository defines all storage operations for the menu catalog.
type Repository interface {

	// Ordered list of every catalog item (insertion/position order).
	ListItems(ctx context.Context) ([]Item, error)

	// Ordered list of category names.
	ListCategories(ctx context.Context) ([]string, error)

	GetItem(ctx context.Context, id string) (*Item, error)

	// Replace the whole catalog atomically. Used for seeding and for
	// admin-driven reloads.
	ReplaceAll(ctx context.Context, items []Item, categories []string) error
}
