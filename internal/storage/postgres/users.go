package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/storage"
)

const userColumns = `u.id, u.email, u.display_name, u.password_hash, r.name, u.created_at`

// CreateUser inserts a new user row, resolving the role reference by name.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	WITH inserted AS (
		INSERT INTO users (email, display_name, password_hash, role_id)
		VALUES ($1, $2, $3, (SELECT id FROM roles WHERE name = $4))
		RETURNING id, email, display_name, password_hash, role_id, created_at
	)
	SELECT u.id, u.email, u.display_name, u.password_hash, r.name, u.created_at
	FROM inserted u
	JOIN roles r ON r.id = u.role_id;
	`
	row := s.pool.QueryRow(ctx, query, user.Email, user.DisplayName, user.PasswordHash, user.Role)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// FindUserByEmail fetches a user by email, ignoring case.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
	SELECT ` + userColumns + `
	FROM users u
	JOIN roles r ON r.id = u.role_id
	WHERE LOWER(u.email) = LOWER($1);
	`
	return scanUser(s.pool.QueryRow(ctx, query, email))
}

// FindUserByID fetches a user by primary key.
func (s *Store) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	const query = `
	SELECT ` + userColumns + `
	FROM users u
	JOIN roles r ON r.id = u.role_id
	WHERE u.id = $1;
	`
	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// ExistsUserByEmail reports whether a user exists with the email, ignoring case.
func (s *Store) ExistsUserByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1));`
	var exists bool
	if err := s.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListUsers returns one page of users ordered by id, plus the total count.
// The count runs separately so a page past the end still reports the true
// total.
func (s *Store) ListUsers(ctx context.Context, page, size int) ([]models.User, int64, error) {
	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
	SELECT ` + userColumns + `
	FROM users u
	JOIN roles r ON r.id = u.role_id
	ORDER BY u.id
	LIMIT $1 OFFSET $2;
	`
	rows, err := s.pool.Query(ctx, query, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		var roleName string
		if err := rows.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &roleName, &u.CreatedAt); err != nil {
			return nil, 0, err
		}
		u.Role = models.Role(roleName)
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// FindRoleByName fetches a seeded role row.
func (s *Store) FindRoleByName(ctx context.Context, name models.Role) (models.RoleRecord, error) {
	const query = `SELECT id, name FROM roles WHERE name = $1;`
	var record models.RoleRecord
	err := s.pool.QueryRow(ctx, query, name).Scan(&record.ID, &record.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.RoleRecord{}, storage.ErrNotFound
		}
		return models.RoleRecord{}, err
	}
	return record, nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	var roleName string
	if err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &roleName, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	u.Role = models.Role(roleName)
	return u, nil
}
