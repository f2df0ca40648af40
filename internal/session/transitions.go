package session

import "aarka/internal/catalog"

// Screen transitions. Each is a pure snapshot-to-snapshot function;
// invalid attempts return the snapshot unchanged rather than erroring,
// since the triggering affordance is expected to be disabled anyway.

// GoTo moves to the given screen unconditionally.
func (s Session) GoTo(screen Screen) Session {
	s.Screen = screen
	return s
}

func (s Session) ContinueFromSplash() Session {
	return s.GoTo(ScreenWelcome)
}

func (s Session) SetOrderType(t OrderType) Session {
	if !t.Valid() {
		return s
	}
	s.OrderType = t
	return s
}

func (s Session) SetPartySize(p PartySize) Session {
	s.PartySize = p.clamped()
	return s
}

func (s Session) SetLanguage(l Language) Session {
	if !l.Valid() {
		return s
	}
	s.Language = l
	return s
}

func (s Session) SelectCategory(category string) Session {
	s.SelectedCategory = category
	return s
}

func (s Session) SetSpecialRequests(text string) Session {
	s.SpecialRequests = text
	return s
}

// ContinueFromWelcome advances to the menu only once an order type has
// been chosen. Without one it refuses silently.
func (s Session) ContinueFromWelcome() Session {
	if s.OrderType == OrderTypeNone {
		return s
	}
	return s.GoTo(ScreenMenu)
}

// OpenCustomize routes an item click. Items without a customization
// schema skip the customize screen entirely and land in the cart
// immediately, staying on the current screen. Customizable items become
// the pending item and open the customize screen.
func (s Session) OpenCustomize(item catalog.Item) Session {
	if !item.Customizable() {
		return s.AddItem(item, nil)
	}
	s.PendingItemID = item.ID
	return s.GoTo(ScreenCustomize)
}

// ConfirmCustomize adds the pending item with the chosen customization
// and returns to the menu. A no-op when nothing is pending.
func (s Session) ConfirmCustomize(item catalog.Item, customization *Customization) Session {
	if s.PendingItemID == "" || s.PendingItemID != item.ID {
		return s
	}
	s = s.AddItem(item, customization)
	s.PendingItemID = ""
	return s.GoTo(ScreenMenu)
}

// CancelCustomize abandons the customize screen. In-progress picks only
// ever lived in the customize screen's transient UI, so there is nothing
// to discard here beyond the pending item.
func (s Session) CancelCustomize() Session {
	s.PendingItemID = ""
	return s.GoTo(ScreenMenu)
}

// Checkout moves to the order review screen. Deliberately unconditional:
// gating on a non-empty cart is the checkout button's job, not the
// transition's.
func (s Session) Checkout() Session {
	return s.GoTo(ScreenOrderReview)
}

func (s Session) BackToMenu() Session {
	return s.GoTo(ScreenMenu)
}

// PlaceOrder moves from review to the confirmation screen. There is no
// backend submission; confirmation is purely kiosk-local state.
func (s Session) PlaceOrder() Session {
	return s.GoTo(ScreenConfirmation)
}

// Reset restores the initial snapshot. Used for start-new-order after
// confirmation and for the confirmed back-to-splash escape hatch.
func (s Session) Reset() Session {
	return New(s.defaultCategory)
}
