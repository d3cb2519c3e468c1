package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/storage"
)

const postColumns = `
	p.id, p.title, p.content, COALESCE(p.image_url, ''), p.category_id, c.name,
	p.author_id, u.display_name,
	(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id),
	p.created_at, p.updated_at`

// SearchPosts returns one page of posts, newest first, optionally filtered by
// category and a case-insensitive keyword over title and content. The count
// runs separately with the same filters so a page past the end still reports
// the true total.
func (s *Store) SearchPosts(ctx context.Context, categoryID *int64, keyword string, page, size int) ([]models.Post, int64, error) {
	const countQuery = `
	SELECT COUNT(*)
	FROM posts p
	WHERE ($1::BIGINT IS NULL OR p.category_id = $1)
	  AND ($2 = '' OR p.title ILIKE '%' || $2 || '%' OR p.content ILIKE '%' || $2 || '%');
	`
	var total int64
	if err := s.pool.QueryRow(ctx, countQuery, categoryID, keyword).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
	SELECT ` + postColumns + `
	FROM posts p
	JOIN categories c ON c.id = p.category_id
	JOIN users u ON u.id = p.author_id
	WHERE ($1::BIGINT IS NULL OR p.category_id = $1)
	  AND ($2 = '' OR p.title ILIKE '%' || $2 || '%' OR p.content ILIKE '%' || $2 || '%')
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT $3 OFFSET $4;
	`
	rows, err := s.pool.Query(ctx, query, categoryID, keyword, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.ImageURL, &p.CategoryID, &p.CategoryName,
			&p.AuthorID, &p.AuthorName, &p.CommentsCount, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}
	return posts, total, rows.Err()
}

// FindPostByID fetches a single post with its denormalized fields.
func (s *Store) FindPostByID(ctx context.Context, id int64) (models.Post, error) {
	const query = `
	SELECT ` + postColumns + `
	FROM posts p
	JOIN categories c ON c.id = p.category_id
	JOIN users u ON u.id = p.author_id
	WHERE p.id = $1;
	`
	return scanPost(s.pool.QueryRow(ctx, query, id))
}

// CreatePost inserts a post and returns it fully populated.
func (s *Store) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	const query = `
	WITH inserted AS (
		INSERT INTO posts (title, content, image_url, category_id, author_id)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id, title, content, image_url, category_id, author_id, created_at, updated_at
	)
	SELECT ` + postColumns + `
	FROM inserted p
	JOIN categories c ON c.id = p.category_id
	JOIN users u ON u.id = p.author_id;
	`
	row := s.pool.QueryRow(ctx, query, post.Title, post.Content, post.ImageURL, post.CategoryID, post.AuthorID)
	return scanPost(row)
}

// UpdatePost replaces the mutable fields of a post.
func (s *Store) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	const query = `
	WITH updated AS (
		UPDATE posts
		SET title = $2, content = $3, image_url = NULLIF($4, ''), category_id = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, content, image_url, category_id, author_id, created_at, updated_at
	)
	SELECT ` + postColumns + `
	FROM updated p
	JOIN categories c ON c.id = p.category_id
	JOIN users u ON u.id = p.author_id;
	`
	row := s.pool.QueryRow(ctx, query, post.ID, post.Title, post.Content, post.ImageURL, post.CategoryID)
	return scanPost(row)
}

// DeletePost removes a post; its comments go with it via ON DELETE CASCADE.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (models.Post, error) {
	var p models.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.ImageURL, &p.CategoryID, &p.CategoryName,
		&p.AuthorID, &p.AuthorName, &p.CommentsCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Post{}, storage.ErrNotFound
		}
		return models.Post{}, err
	}
	return p, nil
}
