package session

// Screen identifies which kiosk screen is active.
type Screen string

const (
	ScreenSplash       Screen = "splash"
	ScreenWelcome      Screen = "welcome"
	ScreenMenu         Screen = "menu"
	ScreenCustomize    Screen = "customize"
	ScreenOrderReview  Screen = "order-review"
	ScreenConfirmation Screen = "confirmation"
)

type OrderType string

const (
	OrderTypeNone    OrderType = ""
	OrderTypeDineIn  OrderType = "dine-in"
	OrderTypeTakeOut OrderType = "take-out"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeOut
}

type Language string

const (
	LanguageEnglish Language = "english"
	LanguageSpanish Language = "spanish"
)

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageSpanish
}

// PartySize counts adults and kids separately. Both components clamp at
// zero and never go negative.
type PartySize struct {
	Adults int `json:"adults"`
	Kids   int `json:"kids"`
}

func (p PartySize) clamped() PartySize {
	if p.Adults < 0 {
		p.Adults = 0
	}
	if p.Kids < 0 {
		p.Kids = 0
	}
	return p
}

func (p PartySize) Total() int {
	return p.Adults + p.Kids
}

// Session is the durable state of one ordering flow. Every transition
// takes a Session by value and returns a new one; nothing mutates shared
// state, so the stored snapshot is always internally consistent.
type Session struct {
	Screen           Screen
	OrderType        OrderType
	Language         Language
	PartySize        PartySize
	Cart             []CartLine
	PendingItemID    string
	SelectedCategory string
	SpecialRequests  string

	defaultCategory string
}

// New returns the initial snapshot: splash screen, empty cart, one adult,
// no order type.
func New(defaultCategory string) Session {
	return Session{
		Screen:           ScreenSplash,
		OrderType:        OrderTypeNone,
		Language:         LanguageEnglish,
		PartySize:        PartySize{Adults: 1, Kids: 0},
		SelectedCategory: defaultCategory,
		defaultCategory:  defaultCategory,
	}
}
