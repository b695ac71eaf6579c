package service

import (
	"context"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/repository"
)

type PostService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

func (s *PostService) List(ctx context.Context, page int) ([]*domain.Post, error) {
	return s.posts.List(ctx, page)
}

func (s *PostService) ListByAuthor(ctx context.Context, author string, page int) ([]*domain.Post, error) {
	return s.posts.ListByAuthor(ctx, author, page)
}

// Get returns a single post with its body rendered to safe markup.
// Rendering happens at read time; the stored body stays raw.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Body = RenderBody(post.Body)
	return post, nil
}

// GetRaw returns a post without rendering, for edit-form prefill.
func (s *PostService) GetRaw(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, title, subtitle, body, author, imgURL string) (*domain.Post, error) {
	post := domain.NewPost(title, subtitle, body, author, imgURL)
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update replaces title, subtitle, body and img_url of an existing post.
// The repository resets the post date to the time of the edit.
func (s *PostService) Update(ctx context.Context, id int64, title, subtitle, body, imgURL string) error {
	post := &domain.Post{
		ID:       id,
		Title:    title,
		Subtitle: subtitle,
		Body:     body,
		ImgURL:   imgURL,
	}
	return s.posts.Update(ctx, post)
}
