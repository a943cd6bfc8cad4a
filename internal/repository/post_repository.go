// Package repository defines the persistence boundary for posts.
package repository

import (
	"context"
	"errors"

	"github.com/sambbaron/posts/internal/filter"
	"github.com/sambbaron/posts/internal/models"
)

var ErrNotFound = errors.New("post not found")

// PostRepository stores posts. Implementations must assign ids atomically
// and return List results in ascending id order.
type PostRepository interface {
	// Insert stores a post and returns it with its new id.
	Insert(ctx context.Context, post models.Post) (models.Post, error)
	// GetByID returns ErrNotFound when no post has the id.
	GetByID(ctx context.Context, id int64) (models.Post, error)
	// List returns the posts matching f.
	List(ctx context.Context, f filter.Filter) ([]models.Post, error)
	// DeleteByID returns ErrNotFound when no post has the id.
	DeleteByID(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
