package repository

import (
	"context"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
)

// PageSize is the fixed number of posts returned per listing page.
const PageSize = 5

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error

	// List returns one page of posts ordered by date descending.
	// A page index past the data yields an empty slice.
	List(ctx context.Context, page int) ([]*domain.Post, error)
	ListByAuthor(ctx context.Context, author string, page int) ([]*domain.Post, error)
}
