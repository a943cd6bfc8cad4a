package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sambbaron/posts/internal/filter"
	"github.com/sambbaron/posts/internal/models"
	"github.com/sambbaron/posts/internal/repository"
)

type PostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ repository.PostRepository = (*PostRepository)(nil)

func (r *PostRepository) Insert(ctx context.Context, post models.Post) (models.Post, error) {
	query := `
		INSERT INTO posts (title, body)
		VALUES ($1, $2)
		RETURNING id, title, body
	`

	var created models.Post
	if err := r.db.GetContext(ctx, &created, query, post.Title, post.Body); err != nil {
		return models.Post{}, fmt.Errorf("insert post: %w", err)
	}
	return created, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post

	err := r.db.GetContext(ctx, &post, `SELECT id, title, body FROM posts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("get post %d: %w", id, err)
	}
	return post, nil
}

func (r *PostRepository) List(ctx context.Context, f filter.Filter) ([]models.Post, error) {
	query := `SELECT id, title, body FROM posts`
	where, args := f.Where(1)
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY id ASC`

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
