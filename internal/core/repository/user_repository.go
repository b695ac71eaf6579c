package repository

import (
	"context"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]*domain.User, error)
}
