package auth

// DeviceRepository defines storage operations for registered kiosk
// devices.
type DeviceRepository interface {
	Save(device *Device) error
	FindByID(id string) (*Device, error)
}
