package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidProvisionKey   = errors.New("invalid provisioning key")
	ErrInvalidAdminPassword  = errors.New("invalid admin password")
	ErrMissingRequiredFields = errors.New("missing required fields")
)

// Service registers kiosk devices against a shared provisioning key and
// authenticates the admin console. The admin password is bcrypt-hashed
// once at startup so the plaintext never sits in memory longer than the
// constructor.
type Service struct {
	repo         DeviceRepository
	provisionKey string
	adminHash    []byte
}

func NewService(repo DeviceRepository, provisionKey, adminPassword string) (*Service, error) {
	if provisionKey == "" || adminPassword == "" {
		return nil, ErrMissingRequiredFields
	}

	adminHash, err := bcrypt.GenerateFromPassword(
		[]byte(adminPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		repo:         repo,
		provisionKey: provisionKey,
		adminHash:    adminHash,
	}, nil
}

// RegisterDevice provisions a kiosk terminal and issues its token.
func (s *Service) RegisterDevice(name, provisionKey string) (*Device, string, error) {
	if name == "" {
		return nil, "", ErrMissingRequiredFields
	}
	if provisionKey != s.provisionKey {
		return nil, "", ErrInvalidProvisionKey
	}

	device := &Device{
		Name: name,
		Role: RoleKiosk,
	}
	if err := s.repo.Save(device); err != nil {
		return nil, "", err
	}

	token, err := GenerateToken(device.ID, device.Name, device.Role)
	if err != nil {
		return nil, "", err
	}

	return device, token, nil
}

// AdminLogin exchanges the admin password for an ADMIN token.
func (s *Service) AdminLogin(password string) (string, error) {
	err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password))
	if err != nil {
		return "", ErrInvalidAdminPassword
	}

	return GenerateToken("admin", "admin", RoleAdmin)
}
