// Package memory keeps posts in process memory. It backs STORE=memory and
// the handler tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sambbaron/posts/internal/filter"
	"github.com/sambbaron/posts/internal/models"
	"github.com/sambbaron/posts/internal/repository"
)

type PostRepository struct {
	mu     sync.RWMutex
	posts  map[int64]models.Post
	lastID int64
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[int64]models.Post)}
}

var _ repository.PostRepository = (*PostRepository)(nil)

func (r *PostRepository) Insert(_ context.Context, post models.Post) (models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// ids are never reused, even after deletes
	r.lastID++
	post.ID = r.lastID
	r.posts[post.ID] = post
	return post, nil
}

func (r *PostRepository) GetByID(_ context.Context, id int64) (models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return models.Post{}, repository.ErrNotFound
	}
	return post, nil
}

func (r *PostRepository) List(_ context.Context, f filter.Filter) ([]models.Post, error) {
	r.mu.RLock()
	all := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		all = append(all, p)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return f.Apply(all), nil
}

func (r *PostRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *PostRepository) Ping(context.Context) error { return nil }

// Reset drops every post and restarts ids at 1.
func (r *PostRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = make(map[int64]models.Post)
	r.lastID = 0
}
