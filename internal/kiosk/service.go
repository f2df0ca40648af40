package kiosk

import (
	"errors"

	"aarka/internal/catalog"
	"aarka/internal/session"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrItemNotFound    = errors.New("item not found")
)

// Service binds the pure session state machine to the session store and
// the catalog. All intent methods return the post-transition snapshot.
type Service struct {
	store   *Store
	catalog *catalog.Service
}

func NewService(store *Store, cat *catalog.Service) *Service {
	return &Service{store: store, catalog: cat}
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------
func (s *Service) Create() Snapshot {
	sess := session.New(s.catalog.DefaultCategory())
	id := s.store.Create(sess)
	return newSnapshot(id, sess, session.Selection{})
}

func (s *Service) Get(id string) (Snapshot, error) {
	sess, sel, ok := s.store.Get(id)
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	return newSnapshot(id, sess, sel), nil
}

// apply runs one session transition and enforces the selection
// lifecycle: the staging set and filter are menu-screen state and are
// discarded whenever the flow navigates anywhere else. The customize
// screen overlays the menu, so it keeps the selection alive.
func (s *Service) apply(id string, fn func(session.Session, session.Selection) (session.Session, session.Selection)) (Snapshot, error) {
	sess, sel, ok := s.store.Update(id, func(sess session.Session, sel session.Selection) (session.Session, session.Selection) {
		sess, sel = fn(sess, sel)
		if sess.Screen != session.ScreenMenu && sess.Screen != session.ScreenCustomize {
			sel = session.Selection{}
		}
		return sess, sel
	})
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	return newSnapshot(id, sess, sel), nil
}

func (s *Service) applySession(id string, fn func(session.Session) session.Session) (Snapshot, error) {
	return s.apply(id, func(sess session.Session, sel session.Selection) (session.Session, session.Selection) {
		return fn(sess), sel
	})
}

// --------------------------------------------------
// Splash + welcome intents
// --------------------------------------------------
func (s *Service) ContinueFromSplash(id string) (Snapshot, error) {
	return s.applySession(id, session.Session.ContinueFromSplash)
}

func (s *Service) SetOrderType(id string, t session.OrderType) (Snapshot, error) {
	return s.applySession(id, func(sess session.Session) session.Session {
		return sess.SetOrderType(t)
	})
}

func (s *Service) SetPartySize(id string, p session.PartySize) (Snapshot, error) {
	return s.applySession(id, func(sess session.Session) session.Session {
		return sess.SetPartySize(p)
	})
}

func (s *Service) SetLanguage(id string, l session.Language) (Snapshot, error) {
	return s.applySession(id, func(sess session.Session) session.Session {
		return sess.SetLanguage(l)
	})
}

func (s *Service) ContinueFromWelcome(id string) (Snapshot, error) {
	return s.applySession(id, session.Session.ContinueFromWelcome)
}

// --------------------------------------------------
// Menu intents
// --------------------------------------------------
func (s *Service) SelectCategory(id, category string) (Snapshot, error) {
	return s.applySession(id, func(sess session.Session) session.Session {
		return sess.SelectCategory(category)
	})
}

// OpenItem routes a single item tap: customizable items open the
// customize screen, everything else lands straight in the cart.
func (s *Service) OpenItem(id, itemID string) (Snapshot, error) {
	item, ok := s.catalog.Find(itemID)
	if !ok {
		return Snapshot{}, ErrItemNotFound
	}
	return s.applySession(id, func(sess session.Session) session.Session {
		return sess.OpenCustomize(item)
	})
}

func (s *Service) ToggleStaged(id, itemID string) (Snapshot, error) {
	if _, ok := s.catalog.Find(itemID); !ok {
		return Snapshot{}, ErrItemNotFound
	}
	return s.apply(id, func(sess session.Session, sel session.Selection) (session.Session, session.Selection) {
		return sess, sel.ToggleStaged(itemID)
	})
}

// ConfirmStaged processes the staged batch in insertion order: plain
// items are added to the cart directly, customizable items route
// through the customize flow (with a single pending slot, the last one
// wins). The staging set is cleared afterwards.
func (s *Service) ConfirmStaged(id string) (Snapshot, error) {
	return s.apply(id, func(sess session.Session, sel session.Selection) (session.Session, session.Selection) {
		for _, itemID := range sel.Staged {
			item, ok := s.catalog.Find(itemID)
			if !ok {
				continue
			}
			sess = sess.OpenCustomize(item)
		}
		return sess, sel.ClearStaged()
	})
}

func (s *Service) ToggleFilter(id string, f session.DietaryFilter) (Snapshot, error) {
	return s.apply(id, func(sess session.Session, sel session.Selection) (session.Session, session.Selection) {
		return sess, sel.ToggleFilter(f)
	})
}

// --------------------------------------------------
// Customize intents
// --------------------------------------------------
func (s *Service) ConfirmCustomize(id string, c *session.Customization) (Snapshot, error) {
	return s.applySession(id, func(sess session.Session) session.Session {
		item, ok := s.catalog.Find(sess.PendingItemID)
		if !ok {
			// Nothing pending (or a stale id): silent no-op.
			return sess
		}
		return sess.ConfirmCustomize(item, sanitizeCustomization(item, c))
	})
}

func (s *Service) CancelCustomize(id string) (Snapshot, error) {
	return s.applySession(id, session.Session.CancelCustomize)
}

// sanitizeCustomization drops choices the item does not offer, so a
// buggy or hostile frontend cannot invent customizations.
func sanitizeCustomization(item catalog.Item, c *session.Customization) *session.Customization {
	if c == nil || item.Customizations == nil {
		return nil
	}

	out := &session.Customization{}
	if contains(item.Customizations.SpiceLevels, c.SpiceLevel) {
		out.SpiceLevel = c.SpiceLevel
	}
	for _, o := range c.Other {
		if contains(item.Customizations.Other, o) {
			out.Other = append(out.Other, o)
		}
	}
	for _, a := range c.AddOns {
		if contains(item.Customizations.AddOns, a) {
			out.AddOns = append(out.AddOns, a)
		}
	}
	return out.Normalize()
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// --------------------------------------------------
// Cart + review intents
// --------------------------------------------------
func (s *Service) UpdateLineQuantity(id, lineKey string, delta int) (Snapshot, error) {
	return s.applySession(id, func(sess session.Session) session.Session {
		return sess.UpdateLineQuantity(lineKey, delta)
	})
}

// AddSuggested adds an upsell item from the review screen without
// leaving it.
func (s *Service) AddSuggested(id, itemID string) (Snapshot, error) {
	item, ok := s.catalog.Find(itemID)
	if !ok {
		return Snapshot{}, ErrItemNotFound
	}
	return s.applySession(id, func(sess session.Session) session.Session {
		return sess.AddItem(item, nil)
	})
}

func (s *Service) Checkout(id string) (Snapshot, error) {
	return s.applySession(id, session.Session.Checkout)
}

func (s *Service) BackToMenu(id string) (Snapshot, error) {
	return s.applySession(id, session.Session.BackToMenu)
}

func (s *Service) SetSpecialRequests(id, text string) (Snapshot, error) {
	return s.applySession(id, func(sess session.Session) session.Session {
		return sess.SetSpecialRequests(text)
	})
}

func (s *Service) PlaceOrder(id string) (Snapshot, error) {
	return s.applySession(id, session.Session.PlaceOrder)
}

func (s *Service) Reset(id string) (Snapshot, error) {
	return s.applySession(id, session.Session.Reset)
}

// --------------------------------------------------
// Review payload
// --------------------------------------------------
func (s *Service) Review(id string) (Review, error) {
	sess, _, ok := s.store.Get(id)
	if !ok {
		return Review{}, ErrSessionNotFound
	}
	return newReview(sess, s.catalog.Suggestions(suggestionLimit)), nil
}
