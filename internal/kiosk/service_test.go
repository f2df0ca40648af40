package kiosk

import (
	"context"
	"math"
	"testing"

	"aarka/internal/catalog"
	"aarka/internal/session"
)

func testCatalog(t *testing.T) *catalog.Service {
	t.Helper()

	repo := catalog.NewInMemoryRepository()
	items := []catalog.Item{
		{ID: "papadum", Name: "Papadum", Price: 2.00, Category: "Accompaniments", IsVegan: true},
		{ID: "naan", Name: "Garlic Naan", Price: 3.50, Category: "Bread", IsVegetarian: true},
		{ID: "lassi", Name: "Mango Lassi", Price: 4.50, Category: "Beverages"},
		{
			ID: "curry", Name: "Butter Chicken", Price: 15.50, Category: "Mains",
			Customizations: &catalog.Customizations{
				SpiceLevels: []string{"mild", "medium", "spicy"},
				Other:       []string{"Boneless"},
				AddOns:      []string{"Extra Sauce", "Extra Rice"},
			},
		},
	}
	categories := []string{"Mains", "Bread", "Accompaniments", "Beverages"}
	if err := repo.ReplaceAll(context.Background(), items, categories); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	service := catalog.NewService(repo)
	if err := service.Load(context.Background()); err != nil {
		t.Fatalf("catalog load failed: %v", err)
	}
	return service
}

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewStore(), testCatalog(t))
}

// Drive a fresh session to the menu screen.
func menuSession(t *testing.T, s *Service) string {
	t.Helper()

	snap := s.Create()
	if _, err := s.ContinueFromSplash(snap.ID); err != nil {
		t.Fatalf("continue from splash: %v", err)
	}
	if _, err := s.SetOrderType(snap.ID, session.OrderTypeDineIn); err != nil {
		t.Fatalf("set order type: %v", err)
	}
	if _, err := s.ContinueFromWelcome(snap.ID); err != nil {
		t.Fatalf("continue from welcome: %v", err)
	}
	return snap.ID
}

func TestCreateReturnsInitialSnapshot(t *testing.T) {
	s := testService(t)

	snap := s.Create()

	if snap.ID == "" {
		t.Fatal("missing session id")
	}
	if snap.Screen != session.ScreenSplash {
		t.Errorf("screen = %s, want splash", snap.Screen)
	}
	if snap.SelectedCategory != "Mains" {
		t.Errorf("category = %q, want Mains (first catalog category)", snap.SelectedCategory)
	}
	if snap.PartySize != (session.PartySize{Adults: 1, Kids: 0}) {
		t.Errorf("party size = %+v, want {1 0}", snap.PartySize)
	}
	if snap.TotalItems != 0 {
		t.Errorf("total items = %d, want 0", snap.TotalItems)
	}
}

func TestUnknownSessionErrors(t *testing.T) {
	s := testService(t)

	if _, err := s.Get("nope"); err != ErrSessionNotFound {
		t.Errorf("Get err = %v, want ErrSessionNotFound", err)
	}
	if _, err := s.Checkout("nope"); err != ErrSessionNotFound {
		t.Errorf("Checkout err = %v, want ErrSessionNotFound", err)
	}
}

func TestOpenItemPlainAddsDirectly(t *testing.T) {
	s := testService(t)
	id := menuSession(t, s)

	snap, err := s.OpenItem(id, "papadum")
	if err != nil {
		t.Fatalf("open item: %v", err)
	}

	if snap.Screen != session.ScreenMenu {
		t.Errorf("screen = %s, want menu", snap.Screen)
	}
	if snap.TotalItems != 1 {
		t.Errorf("total items = %d, want 1", snap.TotalItems)
	}
}

func TestOpenItemUnknownErrors(t *testing.T) {
	s := testService(t)
	id := menuSession(t, s)

	if _, err := s.OpenItem(id, "ghost"); err != ErrItemNotFound {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestCustomizeFlowSanitizesChoices(t *testing.T) {
	s := testService(t)
	id := menuSession(t, s)

	snap, err := s.OpenItem(id, "curry")
	if err != nil {
		t.Fatalf("open item: %v", err)
	}
	if snap.Screen != session.ScreenCustomize || snap.PendingItemID != "curry" {
		t.Fatalf("expected customize screen with pending curry, got %+v", snap)
	}

	// "volcanic" and "Free Gold" are not offered and must be dropped.
	snap, err = s.ConfirmCustomize(id, &session.Customization{
		SpiceLevel: "volcanic",
		Other:      []string{"Boneless", "Free Gold"},
		AddOns:     []string{"Extra Sauce"},
	})
	if err != nil {
		t.Fatalf("confirm customize: %v", err)
	}

	if snap.Screen != session.ScreenMenu {
		t.Errorf("screen = %s, want menu", snap.Screen)
	}
	if len(snap.Cart) != 1 {
		t.Fatalf("cart lines = %d, want 1", len(snap.Cart))
	}

	got := snap.Cart[0].Customization
	if got == nil {
		t.Fatal("customization missing from line")
	}
	if got.SpiceLevel != "" {
		t.Errorf("spice = %q, want dropped", got.SpiceLevel)
	}
	if len(got.Other) != 1 || got.Other[0] != "Boneless" {
		t.Errorf("other = %v, want [Boneless]", got.Other)
	}
	if len(got.AddOns) != 1 || got.AddOns[0] != "Extra Sauce" {
		t.Errorf("add-ons = %v, want [Extra Sauce]", got.AddOns)
	}
}

func TestConfirmStagedAddsInInsertionOrder(t *testing.T) {
	s := testService(t)
	id := menuSession(t, s)

	for _, itemID := range []string{"lassi", "papadum", "naan"} {
		if _, err := s.ToggleStaged(id, itemID); err != nil {
			t.Fatalf("stage %s: %v", itemID, err)
		}
	}

	snap, err := s.ConfirmStaged(id)
	if err != nil {
		t.Fatalf("confirm staged: %v", err)
	}

	if len(snap.Staged) != 0 {
		t.Errorf("staged not cleared: %v", snap.Staged)
	}
	if len(snap.Cart) != 3 {
		t.Fatalf("cart lines = %d, want 3", len(snap.Cart))
	}
	want := []string{"lassi", "papadum", "naan"}
	for i, itemID := range want {
		if snap.Cart[i].ItemID != itemID {
			t.Errorf("line %d = %s, want %s", i, snap.Cart[i].ItemID, itemID)
		}
	}
}

func TestConfirmStagedRoutesCustomizableItems(t *testing.T) {
	s := testService(t)
	id := menuSession(t, s)

	if _, err := s.ToggleStaged(id, "papadum"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ToggleStaged(id, "curry"); err != nil {
		t.Fatal(err)
	}

	snap, err := s.ConfirmStaged(id)
	if err != nil {
		t.Fatalf("confirm staged: %v", err)
	}

	// Plain item added; customizable one left pending on the customize
	// screen.
	if snap.Screen != session.ScreenCustomize {
		t.Errorf("screen = %s, want customize", snap.Screen)
	}
	if snap.PendingItemID != "curry" {
		t.Errorf("pending = %q, want curry", snap.PendingItemID)
	}
	if snap.TotalItems != 1 {
		t.Errorf("total items = %d, want 1", snap.TotalItems)
	}
}

func TestSelectionClearedOnNavigation(t *testing.T) {
	s := testService(t)
	id := menuSession(t, s)

	if _, err := s.ToggleStaged(id, "naan"); err != nil {
		t.Fatal(err)
	}
	snap, err := s.ToggleFilter(id, session.FilterVegan)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Filter != session.FilterVegan || len(snap.Staged) != 1 {
		t.Fatalf("selection not recorded: %+v", snap)
	}

	// Leaving the menu discards the transient selection.
	snap, err = s.Checkout(id)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Filter != session.FilterNone || len(snap.Staged) != 0 {
		t.Fatalf("selection leaked across navigation: filter=%q staged=%v",
			snap.Filter, snap.Staged)
	}
}

func TestUpdateLineQuantityByKey(t *testing.T) {
	s := testService(t)
	id := menuSession(t, s)

	snap, err := s.OpenItem(id, "naan")
	if err != nil {
		t.Fatal(err)
	}
	key := snap.Cart[0].Key

	snap, err = s.UpdateLineQuantity(id, key, 2)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Cart[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", snap.Cart[0].Quantity)
	}

	snap, err = s.UpdateLineQuantity(id, key, -10)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Cart) != 0 {
		t.Errorf("cart = %+v, want empty", snap.Cart)
	}
}

func TestReviewPayload(t *testing.T) {
	s := testService(t)
	id := menuSession(t, s)

	if _, err := s.SetPartySize(id, session.PartySize{Adults: 2, Kids: 0}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.OpenItem(id, "naan"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.OpenItem(id, "naan"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Checkout(id); err != nil {
		t.Fatal(err)
	}

	review, err := s.Review(id)
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	if review.TotalItems != 2 {
		t.Errorf("total items = %d, want 2", review.TotalItems)
	}
	if math.Abs(review.TotalPrice-7.00) > 0.001 {
		t.Errorf("total price = %v, want 7.00", review.TotalPrice)
	}
	if len(review.Suggestions) == 0 {
		t.Error("expected upsell suggestions")
	}
	for _, item := range review.Suggestions {
		if item.Category == "Mains" {
			t.Errorf("mains offered as upsell: %s", item.ID)
		}
	}

	// 2 items of a 3.6 target is ~55%: yellow zone.
	if review.Progress.Level != "yellow" {
		t.Errorf("progress level = %q, want yellow (%.0f%%)",
			review.Progress.Level, review.Progress.Percent)
	}
}

func TestAddSuggestedKeepsReviewScreen(t *testing.T) {
	s := testService(t)
	id := menuSession(t, s)

	if _, err := s.Checkout(id); err != nil {
		t.Fatal(err)
	}

	snap, err := s.AddSuggested(id, "lassi")
	if err != nil {
		t.Fatal(err)
	}

	if snap.Screen != session.ScreenOrderReview {
		t.Errorf("screen = %s, want order-review", snap.Screen)
	}
	if snap.TotalItems != 1 {
		t.Errorf("total items = %d, want 1", snap.TotalItems)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := testService(t)
	id := menuSession(t, s)

	if _, err := s.OpenItem(id, "naan"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Checkout(id); err != nil {
		t.Fatal(err)
	}
	if _, err := s.PlaceOrder(id); err != nil {
		t.Fatal(err)
	}

	snap, err := s.Reset(id)
	if err != nil {
		t.Fatal(err)
	}

	if snap.Screen != session.ScreenSplash {
		t.Errorf("screen = %s, want splash", snap.Screen)
	}
	if snap.OrderType != session.OrderTypeNone {
		t.Errorf("order type = %q, want none", snap.OrderType)
	}
	if snap.TotalItems != 0 {
		t.Errorf("cart not emptied: %d items", snap.TotalItems)
	}
	if snap.SelectedCategory != "Mains" {
		t.Errorf("category = %q, want Mains", snap.SelectedCategory)
	}
}
