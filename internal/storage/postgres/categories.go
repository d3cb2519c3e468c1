package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/storage"
)

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	const query = `SELECT id, name, slug, created_at FROM categories ORDER BY name;`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// FindCategoryByID fetches a category by primary key.
func (s *Store) FindCategoryByID(ctx context.Context, id int64) (models.Category, error) {
	const query = `SELECT id, name, slug, created_at FROM categories WHERE id = $1;`
	return scanCategory(s.pool.QueryRow(ctx, query, id))
}

// CreateCategory inserts a category.
func (s *Store) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	const query = `
	INSERT INTO categories (name, slug)
	VALUES ($1, $2)
	RETURNING id, name, slug, created_at;
	`
	created, err := scanCategory(s.pool.QueryRow(ctx, query, category.Name, category.Slug))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.Category{}, storage.ErrAlreadyExists
		}
		return models.Category{}, err
	}
	return created, nil
}

// UpdateCategory replaces a category's name and slug.
func (s *Store) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	const query = `
	UPDATE categories SET name = $2, slug = $3
	WHERE id = $1
	RETURNING id, name, slug, created_at;
	`
	updated, err := scanCategory(s.pool.QueryRow(ctx, query, category.ID, category.Name, category.Slug))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.Category{}, storage.ErrAlreadyExists
		}
		return models.Category{}, err
	}
	return updated, nil
}

// DeleteCategory removes a category.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ExistsCategoryByNameOrSlug reports whether a category already claims the
// name or slug, ignoring case.
func (s *Store) ExistsCategoryByNameOrSlug(ctx context.Context, name, slug string) (bool, error) {
	const query = `
	SELECT EXISTS (
		SELECT 1 FROM categories
		WHERE LOWER(name) = LOWER($1) OR LOWER(slug) = LOWER($2)
	);
	`
	var exists bool
	if err := s.pool.QueryRow(ctx, query, name, slug).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanCategory(row pgx.Row) (models.Category, error) {
	var c models.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Category{}, storage.ErrNotFound
		}
		return models.Category{}, err
	}
	return c, nil
}
