package session

import "aarka/internal/catalog"

// DietaryFilter dims non-matching items on the menu screen. It only
// affects presentation; filtered-out items stay clickable.
type DietaryFilter string

const (
	FilterNone       DietaryFilter = ""
	FilterVegan      DietaryFilter = "vegan"
	FilterVegetarian DietaryFilter = "vegetarian"
	FilterGlutenFree DietaryFilter = "gluten-free"
)

func (f DietaryFilter) Valid() bool {
	switch f {
	case FilterNone, FilterVegan, FilterVegetarian, FilterGlutenFree:
		return true
	}
	return false
}

// Matches reports whether the item passes the filter. Vegan items count
// as vegetarian; an inactive filter passes everything.
func (f DietaryFilter) Matches(item catalog.Item) bool {
	switch f {
	case FilterVegan:
		return item.IsVegan
	case FilterVegetarian:
		return item.IsVegetarian || item.IsVegan
	case FilterGlutenFree:
		return item.IsGlutenFree
	default:
		return true
	}
}

// Selection is the transient, menu-screen-local interaction state: the
// multi-select staging set and the active dietary filter. It is not part
// of the Session snapshot and is discarded whenever the flow navigates
// away from the menu.
type Selection struct {
	// Staged holds item ids in insertion order so a batch add iterates
	// deterministically.
	Staged []string
	Filter DietaryFilter
}

// ToggleStaged adds the id to the staging set, or removes it if already
// staged.
func (sel Selection) ToggleStaged(itemID string) Selection {
	staged := make([]string, 0, len(sel.Staged)+1)
	removed := false
	for _, id := range sel.Staged {
		if id == itemID {
			removed = true
			continue
		}
		staged = append(staged, id)
	}
	if !removed {
		staged = append(staged, itemID)
	}
	sel.Staged = staged
	return sel
}

func (sel Selection) IsStaged(itemID string) bool {
	for _, id := range sel.Staged {
		if id == itemID {
			return true
		}
	}
	return false
}

func (sel Selection) ClearStaged() Selection {
	sel.Staged = nil
	return sel
}

// ToggleFilter activates the filter, or clears it when the same value is
// re-selected. Invalid values leave the selection unchanged.
func (sel Selection) ToggleFilter(f DietaryFilter) Selection {
	if !f.Valid() {
		return sel
	}
	if sel.Filter == f {
		sel.Filter = FilterNone
	} else {
		sel.Filter = f
	}
	return sel
}
