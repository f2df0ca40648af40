package auth

import "time"

const (
	RoleKiosk = "KIOSK"
	RoleAdmin = "ADMIN"
)

// Device is one registered kiosk terminal.
type Device struct {
	ID           string
	Name         string
	Role         string
	RegisteredAt time.Time
}
