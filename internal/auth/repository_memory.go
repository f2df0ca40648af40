package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrDeviceNotFound = errors.New("device not found")

type InMemoryDeviceRepository struct {
	mu      sync.RWMutex
	devices map[string]*Device
}

func NewInMemoryDeviceRepository() *InMemoryDeviceRepository {
	return &InMemoryDeviceRepository{
		devices: make(map[string]*Device),
	}
}

func (r *InMemoryDeviceRepository) Save(device *Device) error {
	if device.ID == "" {
		device.ID = uuid.New().String()
	}

	r.mu.Lock()
	r.devices[device.ID] = device
	r.mu.Unlock()
	return nil
}

func (r *InMemoryDeviceRepository) FindByID(id string) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	device, ok := r.devices[id]
	if !ok {
		return nil, ErrDeviceNotFound
	}
	return device, nil
}
