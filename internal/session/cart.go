package session

import (
	"sort"
	"strings"

	"aarka/internal/catalog"
)

// Customization is one concrete set of choices for a cart line. Two
// customizations are equal iff their structural content matches: same
// spice level, same option set, same add-on set (order-insensitive).
type Customization struct {
	SpiceLevel string   `json:"spice_level,omitempty"`
	Other      []string `json:"other,omitempty"`
	AddOns     []string `json:"add_ons,omitempty"`
}

// IsZero reports whether the customization carries no choices at all.
func (c *Customization) IsZero() bool {
	return c == nil || (c.SpiceLevel == "" && len(c.Other) == 0 && len(c.AddOns) == 0)
}

// Fingerprint returns the canonical string form of the customization.
// Equal fingerprints define equal customizations; an empty customization
// (or nil) fingerprints to "".
func (c *Customization) Fingerprint() string {
	if c.IsZero() {
		return ""
	}

	var b strings.Builder
	b.WriteString("spice=")
	b.WriteString(c.SpiceLevel)
	b.WriteString(";other=")
	b.WriteString(sortedJoin(c.Other))
	b.WriteString(";addons=")
	b.WriteString(sortedJoin(c.AddOns))
	return b.String()
}

func (c *Customization) Equal(other *Customization) bool {
	return c.Fingerprint() == other.Fingerprint()
}

// Normalize drops empty slices and returns nil for an all-empty
// customization, so "no choices" is always represented the same way.
func (c *Customization) Normalize() *Customization {
	if c.IsZero() {
		return nil
	}
	n := &Customization{SpiceLevel: c.SpiceLevel}
	if len(c.Other) > 0 {
		n.Other = append([]string(nil), c.Other...)
	}
	if len(c.AddOns) > 0 {
		n.AddOns = append([]string(nil), c.AddOns...)
	}
	return n
}

func sortedJoin(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// CartLine is one distinct (item, customization) combination.
type CartLine struct {
	Item          catalog.Item
	Quantity      int
	Customization *Customization
}

// Key is the stable line identity: item id plus customization
// fingerprint. Quantity updates are keyed by it so two differently
// customized lines of the same item never cross-talk.
func (l CartLine) Key() string {
	return LineKey(l.Item.ID, l.Customization)
}

func LineKey(itemID string, c *Customization) string {
	return itemID + "|" + c.Fingerprint()
}

// AddItem merges the item into the cart: if a line with the same item id
// and a structurally equal customization exists its quantity grows by
// one, otherwise a new line with quantity one is appended. Insertion
// order is preserved. The operation is total, it never fails.
func (s Session) AddItem(item catalog.Item, customization *Customization) Session {
	customization = customization.Normalize()
	key := LineKey(item.ID, customization)

	cart := make([]CartLine, len(s.Cart))
	copy(cart, s.Cart)

	for i := range cart {
		if cart[i].Key() == key {
			cart[i].Quantity++
			s.Cart = cart
			return s
		}
	}

	s.Cart = append(cart, CartLine{
		Item:          item,
		Quantity:      1,
		Customization: customization,
	})
	return s
}

// UpdateLineQuantity adds delta to the quantity of the line identified
// by key. The quantity floors at zero and a zero line is removed. An
// unknown key is a silent no-op.
func (s Session) UpdateLineQuantity(key string, delta int) Session {
	cart := make([]CartLine, 0, len(s.Cart))
	for _, line := range s.Cart {
		if line.Key() == key {
			line.Quantity += delta
			if line.Quantity <= 0 {
				continue
			}
		}
		cart = append(cart, line)
	}
	s.Cart = cart
	return s
}

// TotalItemCount is the sum of all line quantities.
func (s Session) TotalItemCount() int {
	total := 0
	for _, line := range s.Cart {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums price x quantity over all lines. Add-ons carry no
// price model and never affect the total.
func (s Session) TotalPrice() float64 {
	total := 0.0
	for _, line := range s.Cart {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}
