package session

import (
	"testing"

	"aarka/internal/catalog"
)

func TestToggleStagedKeepsInsertionOrder(t *testing.T) {
	sel := Selection{}
	sel = sel.ToggleStaged("b")
	sel = sel.ToggleStaged("a")
	sel = sel.ToggleStaged("c")

	want := []string{"b", "a", "c"}
	if len(sel.Staged) != len(want) {
		t.Fatalf("staged = %v, want %v", sel.Staged, want)
	}
	for i := range want {
		if sel.Staged[i] != want[i] {
			t.Fatalf("staged = %v, want %v", sel.Staged, want)
		}
	}

	// Re-toggling removes without disturbing the rest.
	sel = sel.ToggleStaged("a")
	if len(sel.Staged) != 2 || sel.Staged[0] != "b" || sel.Staged[1] != "c" {
		t.Fatalf("staged after untoggle = %v, want [b c]", sel.Staged)
	}
	if sel.IsStaged("a") {
		t.Error("a still reported as staged")
	}
}

func TestClearStaged(t *testing.T) {
	sel := Selection{}.ToggleStaged("x").ToggleStaged("y")
	sel = sel.ClearStaged()
	if len(sel.Staged) != 0 {
		t.Fatalf("staged = %v, want empty", sel.Staged)
	}
}

func TestToggleFilterReselectClears(t *testing.T) {
	sel := Selection{}

	sel = sel.ToggleFilter(FilterVegan)
	if sel.Filter != FilterVegan {
		t.Fatalf("filter = %q, want vegan", sel.Filter)
	}

	// Re-selecting the active filter turns it off.
	sel = sel.ToggleFilter(FilterVegan)
	if sel.Filter != FilterNone {
		t.Fatalf("filter = %q, want none", sel.Filter)
	}

	// Switching goes directly to the new filter.
	sel = sel.ToggleFilter(FilterVegan).ToggleFilter(FilterGlutenFree)
	if sel.Filter != FilterGlutenFree {
		t.Fatalf("filter = %q, want gluten-free", sel.Filter)
	}

	// Garbage values are ignored.
	sel = sel.ToggleFilter("keto")
	if sel.Filter != FilterGlutenFree {
		t.Fatalf("filter = %q, want gluten-free", sel.Filter)
	}
}

func TestDietaryFilterMatches(t *testing.T) {
	vegan := catalog.Item{ID: "v", IsVegan: true, IsVegetarian: true}
	vegetarian := catalog.Item{ID: "vg", IsVegetarian: true}
	glutenFree := catalog.Item{ID: "gf", IsGlutenFree: true}
	plain := catalog.Item{ID: "p"}

	tests := []struct {
		name   string
		filter DietaryFilter
		item   catalog.Item
		want   bool
	}{
		{"none passes everything", FilterNone, plain, true},
		{"vegan passes vegan", FilterVegan, vegan, true},
		{"vegan rejects vegetarian", FilterVegan, vegetarian, false},
		{"vegetarian passes vegan", FilterVegetarian, vegan, true},
		{"vegetarian passes vegetarian", FilterVegetarian, vegetarian, true},
		{"vegetarian rejects plain", FilterVegetarian, plain, false},
		{"gluten-free passes flagged", FilterGlutenFree, glutenFree, true},
		{"gluten-free rejects unflagged", FilterGlutenFree, vegan, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.item); got != tt.want {
				t.Errorf("Matches(%s) = %v, want %v", tt.item.ID, got, tt.want)
			}
		})
	}
}
