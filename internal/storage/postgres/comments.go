package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/storage"
)

const commentColumns = `cm.id, cm.post_id, cm.content, cm.author_id, u.display_name, cm.created_at`

// ListCommentsByPost returns a post's comments oldest first.
func (s *Store) ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	const query = `
	SELECT ` + commentColumns + `
	FROM comments cm
	JOIN users u ON u.id = cm.author_id
	WHERE cm.post_id = $1
	ORDER BY cm.created_at, cm.id;
	`
	rows, err := s.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Content, &c.AuthorID, &c.AuthorName, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// FindCommentByID fetches a comment by primary key.
func (s *Store) FindCommentByID(ctx context.Context, id int64) (models.Comment, error) {
	const query = `
	SELECT ` + commentColumns + `
	FROM comments cm
	JOIN users u ON u.id = cm.author_id
	WHERE cm.id = $1;
	`
	return scanComment(s.pool.QueryRow(ctx, query, id))
}

// CreateComment inserts a comment.
func (s *Store) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	const query = `
	WITH inserted AS (
		INSERT INTO comments (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, post_id, content, author_id, created_at
	)
	SELECT cm.id, cm.post_id, cm.content, cm.author_id, u.display_name, cm.created_at
	FROM inserted cm
	JOIN users u ON u.id = cm.author_id;
	`
	row := s.pool.QueryRow(ctx, query, comment.PostID, comment.AuthorID, comment.Content)
	return scanComment(row)
}

// DeleteComment removes a comment.
func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanComment(row pgx.Row) (models.Comment, error) {
	var c models.Comment
	if err := row.Scan(&c.ID, &c.PostID, &c.Content, &c.AuthorID, &c.AuthorName, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Comment{}, storage.ErrNotFound
		}
		return models.Comment{}, err
	}
	return c, nil
}
