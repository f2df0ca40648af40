package catalog

// Item is a single entry in the menu catalog. The catalog is read-only
// static input to the kiosk: items are loaded once at startup and served
// from an immutable snapshot.
type Item struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	Image        string   `json:"image,omitempty"`
	Description  string   `json:"description,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Allergens    []string `json:"allergens,omitempty"`
	IsVegan      bool     `json:"is_vegan,omitempty"`
	IsVegetarian bool     `json:"is_vegetarian,omitempty"`
	IsGlutenFree bool     `json:"is_gluten_free,omitempty"`

	// Customizations is nil for items that go straight into the cart
	// without a customize step.
	Customizations *Customizations `json:"customizations,omitempty"`
}

// Customizations describes what can be customized on an item.
type Customizations struct {
	// SpiceLevels lists the selectable spice levels (empty if the item
	// has no spice choice).
	SpiceLevels []string `json:"spice_levels,omitempty"`

	// Other lists named options specific to this item.
	Other []string `json:"other,omitempty"`

	// AddOns lists selectable add-ons. Add-ons are recorded on the cart
	// line but carry no price of their own.
	AddOns []string `json:"add_ons,omitempty"`
}

// Customizable reports whether the item needs the customize screen.
func (i Item) Customizable() bool {
	return i.Customizations != nil
}

// HasDietaryInfo reports whether there is anything to show in the
// ingredient overlay for this item.
func (i Item) HasDietaryInfo() bool {
	return len(i.Ingredients) > 0 || len(i.Allergens) > 0 ||
		i.IsVegan || i.IsVegetarian || i.IsGlutenFree
}
