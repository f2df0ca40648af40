package catalog

import "fmt"

// Validate checks a catalog before it is served. A malformed catalog is
// the one fatal condition in the system, so every rule here fails loudly
// at load time instead of surfacing later in a session.
func Validate(items []Item, categories []string) error {
	if len(categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}
	if len(items) == 0 {
		return fmt.Errorf("catalog has no items")
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c == "" {
			return fmt.Errorf("empty category name")
		}
		if known[c] {
			return fmt.Errorf("duplicate category %q", c)
		}
		known[c] = true
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID == "" {
			return fmt.Errorf("item %q has no id", item.Name)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate item id %q", item.ID)
		}
		seen[item.ID] = true

		if item.Name == "" {
			return fmt.Errorf("item %q has no name", item.ID)
		}
		if item.Price < 0 {
			return fmt.Errorf("item %q has negative price", item.ID)
		}
		if !known[item.Category] {
			return fmt.Errorf("item %q references unknown category %q", item.ID, item.Category)
		}
	}

	return nil
}
