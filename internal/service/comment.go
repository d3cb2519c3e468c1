package service

import (
	"context"
	"errors"

	"github.com/bloghub/bloghub-be/internal/apperr"
	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/models/dto"
	"github.com/bloghub/bloghub-be/internal/storage"
)

// CommentService owns comment listing, creation and deletion.
type CommentService struct {
	comments storage.CommentStore
	posts    storage.PostStore
}

func NewCommentService(comments storage.CommentStore, posts storage.PostStore) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// ListByPost returns a post's comments oldest first.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	if _, err := s.posts.FindPostByID(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}
	comments, err := s.comments.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// Add attaches a comment to a post on behalf of the acting principal.
func (s *CommentService) Add(ctx context.Context, postID int64, req dto.CommentCreateRequest, actor auth.Principal) (models.Comment, error) {
	if problems := req.Validate(); len(problems) > 0 {
		return models.Comment{}, apperr.Validation("validation failed", problems)
	}
	if _, err := s.posts.FindPostByID(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Comment{}, apperr.NotFound("post not found")
		}
		return models.Comment{}, err
	}

	return s.comments.CreateComment(ctx, models.Comment{
		PostID:   postID,
		AuthorID: actor.ID,
		Content:  req.Content,
	})
}

// Delete removes a comment; only its author or an admin may do so.
func (s *CommentService) Delete(ctx context.Context, id int64, actor auth.Principal) error {
	comment, err := s.comments.FindCommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("comment not found")
		}
		return err
	}
	if !auth.CanModify(actor, comment.AuthorID) {
		return apperr.Forbidden("you are not allowed to delete this comment")
	}
	return s.comments.DeleteComment(ctx, id)
}
