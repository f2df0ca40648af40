package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresDeviceRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDeviceRepository(db *pgxpool.Pool) *PostgresDeviceRepository {
	return &PostgresDeviceRepository{db: db}
}

func (r *PostgresDeviceRepository) Save(device *Device) error {
	if device.ID == "" {
		device.ID = uuid.New().String()
	}

	query := `
		INSERT INTO kiosk_devices (id, name, role)
		VALUES ($1, $2, $3)
		RETURNING registered_at
	`

	return r.db.QueryRow(
		context.Background(),
		query,
		device.ID,
		device.Name,
		device.Role,
	).Scan(&device.RegisteredAt)
}

func (r *PostgresDeviceRepository) FindByID(id string) (*Device, error) {
	query := `
		SELECT id, name, role, registered_at
		FROM kiosk_devices
		WHERE id = $1
	`

	var device Device
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&device.ID,
		&device.Name,
		&device.Role,
		&device.RegisteredAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}
