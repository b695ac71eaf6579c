package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/repository"
)

type postRepository struct {
	db *DB
}

func NewPostRepository(db *DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO post (title, subtitle, body, author, date, img_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		post.Title,
		post.Subtitle,
		post.Body,
		post.Author,
		post.Date,
		post.ImgURL,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("post title %q: %w", post.Title, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get post id: %w", err)
	}
	post.ID = id
	return nil
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `
		SELECT id, title, subtitle, body, author, date, img_url
		FROM post
		WHERE id = ?
	`
	var post domain.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

// Update fully replaces title, subtitle, body and img_url and resets the
// post date to the time of the edit. The id and author never change.
func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE post
		SET title = ?, subtitle = ?, body = ?, img_url = ?, date = ?
		WHERE id = ?
	`
	post.Date = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		post.Title,
		post.Subtitle,
		post.Body,
		post.ImgURL,
		post.Date,
		post.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("post title %q: %w", post.Title, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("post %d: %w", post.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *postRepository) List(ctx context.Context, page int) ([]*domain.Post, error) {
	query := `
		SELECT id, title, subtitle, body, author, date, img_url
		FROM post
		ORDER BY date DESC
		LIMIT ? OFFSET ?
	`
	posts := []*domain.Post{}
	err := r.db.SelectContext(ctx, &posts, query, repository.PageSize, page*repository.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, author string, page int) ([]*domain.Post, error) {
	query := `
		SELECT id, title, subtitle, body, author, date, img_url
		FROM post
		WHERE author = ?
		ORDER BY date DESC
		LIMIT ? OFFSET ?
	`
	posts := []*domain.Post{}
	err := r.db.SelectContext(ctx, &posts, query, author, repository.PageSize, page*repository.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	return posts, nil
}
