package kiosk

import (
	"aarka/internal/catalog"
	"aarka/internal/session"
)

const (
	// Roughly 1.5-2 items per person makes a full meal; the review
	// screen's gauge measures the cart against this target.
	targetItemsPerPerson = 1.8

	suggestionLimit = 6
)

// Snapshot is the render layer's view of one session: the durable state
// plus the transient menu selection. Screens are pure functions of it.
type Snapshot struct {
	ID               string                `json:"id"`
	Screen           session.Screen        `json:"screen"`
	OrderType        session.OrderType     `json:"order_type"`
	Language         session.Language      `json:"language"`
	PartySize        session.PartySize     `json:"party_size"`
	Cart             []CartLineView        `json:"cart"`
	TotalItems       int                   `json:"total_items"`
	TotalPrice       float64               `json:"total_price"`
	PendingItemID    string                `json:"pending_item_id,omitempty"`
	SelectedCategory string                `json:"selected_category"`
	SpecialRequests  string                `json:"special_requests,omitempty"`
	Staged           []string              `json:"staged,omitempty"`
	Filter           session.DietaryFilter `json:"filter,omitempty"`
}

type CartLineView struct {
	Key           string                 `json:"key"`
	ItemID        string                 `json:"item_id"`
	Name          string                 `json:"name"`
	UnitPrice     float64                `json:"unit_price"`
	Quantity      int                    `json:"quantity"`
	LineTotal     float64                `json:"line_total"`
	Customization *session.Customization `json:"customization,omitempty"`
}

func newSnapshot(id string, sess session.Session, sel session.Selection) Snapshot {
	return Snapshot{
		ID:               id,
		Screen:           sess.Screen,
		OrderType:        sess.OrderType,
		Language:         sess.Language,
		PartySize:        sess.PartySize,
		Cart:             cartView(sess.Cart),
		TotalItems:       sess.TotalItemCount(),
		TotalPrice:       sess.TotalPrice(),
		PendingItemID:    sess.PendingItemID,
		SelectedCategory: sess.SelectedCategory,
		SpecialRequests:  sess.SpecialRequests,
		Staged:           sel.Staged,
		Filter:           sel.Filter,
	}
}

func cartView(cart []session.CartLine) []CartLineView {
	view := make([]CartLineView, 0, len(cart))
	for _, line := range cart {
		view = append(view, CartLineView{
			Key:           line.Key(),
			ItemID:        line.Item.ID,
			Name:          line.Item.Name,
			UnitPrice:     line.Item.Price,
			Quantity:      line.Quantity,
			LineTotal:     line.Item.Price * float64(line.Quantity),
			Customization: line.Customization,
		})
	}
	return view
}

// Review is the order-review screen payload: the cart with totals plus
// upsell suggestions and the meal-progress gauge.
type Review struct {
	Cart            []CartLineView    `json:"cart"`
	TotalItems      int               `json:"total_items"`
	TotalPrice      float64           `json:"total_price"`
	PartySize       session.PartySize `json:"party_size"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	Suggestions     []catalog.Item    `json:"suggestions"`
	Progress        MealProgress      `json:"progress"`
}

// MealProgress reports how close the cart is to a full meal for the
// party. Level maps straight to the gauge color.
type MealProgress struct {
	TargetItems float64 `json:"target_items"`
	Percent     float64 `json:"percent"`
	Level       string  `json:"level"`
}

func newReview(sess session.Session, suggestions []catalog.Item) Review {
	return Review{
		Cart:            cartView(sess.Cart),
		TotalItems:      sess.TotalItemCount(),
		TotalPrice:      sess.TotalPrice(),
		PartySize:       sess.PartySize,
		SpecialRequests: sess.SpecialRequests,
		Suggestions:     suggestions,
		Progress:        mealProgress(sess.TotalItemCount(), sess.PartySize),
	}
}

func mealProgress(totalItems int, party session.PartySize) MealProgress {
	people := party.Total()
	if people < 1 {
		people = 1
	}
	target := float64(people) * targetItemsPerPerson

	ratio := float64(totalItems) / target
	if ratio > 1 {
		ratio = 1
	}

	level := "green"
	switch {
	case ratio < 0.33:
		level = "red"
	case ratio < 0.66:
		level = "yellow"
	}

	return MealProgress{
		TargetItems: target,
		Percent:     ratio * 100,
		Level:       level,
	}
}
