package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List all items in display order
// --------------------------------------------------
func (r *PostgresRepository) ListItems(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			name,
			price,
			category,
			image,
			description,
			ingredients,
			allergens,
			is_vegan,
			is_vegetarian,
			is_gluten_free,
			customizations
		FROM catalog_items
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// List category names in display order
// --------------------------------------------------
func (r *PostgresRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name
		FROM catalog_categories
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		categories = append(categories, name)
	}

	return categories, rows.Err()
}

func (r *PostgresRepository) GetItem(ctx context.Context, id string) (*Item, error) {
	row := r.db.QueryRow(ctx, `
		SELECT
			id,
			name,
			price,
			category,
			image,
			description,
			ingredients,
			allergens,
			is_vegan,
			is_vegetarian,
			is_gluten_free,
			customizations
		FROM catalog_items
		WHERE id = $1
	`, id)

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	return item, err
}

// --------------------------------------------------
// Replace the whole catalog atomically
// --------------------------------------------------
func (r *PostgresRepository) ReplaceAll(ctx context.Context, items []Item, categories []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM catalog_items`); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM catalog_categories`); err != nil {
		return err
	}

	for pos, name := range categories {
		if _, err := tx.Exec(ctx, `
			INSERT INTO catalog_categories (position, name)
			VALUES ($1, $2)
		`, pos, name); err != nil {
			return err
		}
	}

	for pos, item := range items {
		var customizations []byte
		if item.Customizations != nil {
			customizations, err = json.Marshal(item.Customizations)
			if err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO catalog_items (
				id,
				name,
				price,
				category,
				image,
				description,
				ingredients,
				allergens,
				is_vegan,
				is_vegetarian,
				is_gluten_free,
				customizations,
				position
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`,
			item.ID,
			item.Name,
			item.Price,
			item.Category,
			item.Image,
			item.Description,
			item.Ingredients,
			item.Allergens,
			item.IsVegan,
			item.IsVegetarian,
			item.IsGlutenFree,
			customizations,
			pos,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func scanItem(row pgx.Row) (*Item, error) {
	var item Item
	var customizations []byte

	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Category,
		&item.Image,
		&item.Description,
		&item.Ingredients,
		&item.Allergens,
		&item.IsVegan,
		&item.IsVegetarian,
		&item.IsGlutenFree,
		&customizations,
	); err != nil {
		return nil, err
	}

	if len(customizations) > 0 {
		item.Customizations = &Customizations{}
		if err := json.Unmarshal(customizations, item.Customizations); err != nil {
			return nil, err
		}
	}

	return &item, nil
}
