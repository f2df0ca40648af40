package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// KIOSK DEVICES
	// -------------------------------
	deviceTableSQL := `
		CREATE TABLE IF NOT EXISTS kiosk_devices (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'KIOSK',
			registered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, deviceTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// CATALOG
	// -------------------------------
	categoryTableSQL := `
		CREATE TABLE IF NOT EXISTS catalog_categories (
			position INT NOT NULL,
			name VARCHAR(255) PRIMARY KEY
		)
	`
	if _, err := db.Exec(ctx, categoryTableSQL); err != nil {
		return err
	}

	itemTableSQL := `
		CREATE TABLE IF NOT EXISTS catalog_items (
			id VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10, 2) NOT NULL DEFAULT 0,
			category VARCHAR(255) NOT NULL REFERENCES catalog_categories(name),
			image VARCHAR(500) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			ingredients TEXT[] NOT NULL DEFAULT '{}',
			allergens TEXT[] NOT NULL DEFAULT '{}',
			is_vegan BOOLEAN NOT NULL DEFAULT FALSE,
			is_vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
			is_gluten_free BOOLEAN NOT NULL DEFAULT FALSE,
			customizations JSONB NULL,
			position INT NOT NULL
		)
	`
	if _, err := db.Exec(ctx, itemTableSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
