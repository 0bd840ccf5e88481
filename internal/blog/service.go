// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog is the data access façade between the HTTP layer and the
// repositories. Public read paths fall back to the immutable seed dataset
// when the store is unreachable; writes and privileged reads never
// substitute fallback data — their store errors propagate.
package blog

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"techly/internal/apperr"
	"techly/internal/fallback"
	"techly/internal/models"
	"techly/internal/slug"
	"techly/internal/store"
)

// postStore is the post repository surface the façade needs.
type postStore interface {
	List(f models.PostFilter) ([]models.Post, error)
	ListAll() ([]models.Post, error)
	Find(ref models.PostRef) (*models.Post, error)
	IncrementViews(id uuid.UUID) error
	Create(in store.CreatePostParams) (*models.Post, error)
	Update(id uuid.UUID, patch models.PostPatch) (*models.Post, error)
	Delete(id uuid.UUID) error
}

// categoryStore is the category repository surface the façade needs.
type categoryStore interface {
	List() ([]models.Category, error)
	Create(name, slugValue, description string) (*models.Category, error)
	Update(id uuid.UUID, name, description string) (*models.Category, error)
}

// Service composes the repositories behind the fallback policy.
type Service struct {
	posts      postStore
	categories categoryStore
}

// NewService creates the façade over the given repositories.
func NewService(posts postStore, categories categoryStore) *Service {
	return &Service{posts: posts, categories: categories}
}

// ListPosts returns published posts matching the filter. If the store is
// unreachable, the seed dataset is filtered equivalently and served instead.
func (s *Service) ListPosts(f models.PostFilter) ([]models.Post, error) {
	items, err := s.posts.List(f)
	if err != nil {
		if apperr.IsApp(err) {
			return nil, err
		}
		slog.Warn("post store unreachable, serving fallback data", "error", err)
		return fallback.Posts(f), nil
	}
	if items == nil {
		items = []models.Post{}
	}
	return items, nil
}

// GetPost fetches one published post by id or slug. Drafts are invisible on
// this path regardless of how they are addressed. On success the view
// counter is incremented fire-and-forget: the read never waits on it and a
// failed increment is logged and discarded.
func (s *Service) GetPost(ref models.PostRef) (*models.Post, error) {
	post, err := s.posts.Find(ref)
	if err != nil {
		if apperr.IsApp(err) {
			return nil, err
		}
		slog.Warn("post store unreachable, checking fallback data", "error", err)
		if p := fallback.FindPost(ref); p != nil {
			return p, nil
		}
		return nil, apperr.NotFound("Post not found")
	}

	if post == nil || !post.IsPublished {
		return nil, apperr.NotFound("Post not found")
	}

	go func(id uuid.UUID) {
		if err := s.posts.IncrementViews(id); err != nil {
			slog.Warn("view increment failed", "post_id", id, "error", err)
		}
	}(post.ID)

	return post, nil
}

// ListAllPosts returns every post, drafts included. Privileged: no
// fallback — a store failure propagates.
func (s *Service) ListAllPosts() ([]models.Post, error) {
	items, err := s.posts.ListAll()
	if err != nil {
		return nil, storeErr(err)
	}
	if items == nil {
		items = []models.Post{}
	}
	return items, nil
}

// CreatePostInput carries the fields accepted on post creation.
type CreatePostInput struct {
	Title          string
	Slug           string
	Content        string
	Excerpt        *string
	CategoryID     *uuid.UUID
	IsPublished    bool
	FeaturedImage  *string
	Tags           []string
	SEOTitle       *string
	SEODescription *string
}

// CreatePost validates the input, derives the slug from the title when none
// is supplied, and inserts the post with the authenticated caller as author.
func (s *Service) CreatePost(authorID uuid.UUID, in CreatePostInput) (*models.Post, error) {
	if utf8.RuneCountInString(strings.TrimSpace(in.Title)) < 5 {
		return nil, apperr.Validation("Title must be at least 5 characters")
	}
	if utf8.RuneCountInString(in.Content) < 20 {
		return nil, apperr.Validation("Content must be at least 20 characters")
	}

	postSlug := in.Slug
	if postSlug == "" {
		postSlug = slug.Generate(in.Title)
	}

	post, err := s.posts.Create(store.CreatePostParams{
		Title:          in.Title,
		Slug:           postSlug,
		Content:        in.Content,
		Excerpt:        in.Excerpt,
		CategoryID:     in.CategoryID,
		AuthorID:       authorID,
		IsPublished:    in.IsPublished,
		FeaturedImage:  in.FeaturedImage,
		Tags:           in.Tags,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return post, nil
}

// UpdatePost applies a partial patch. An empty patch is rejected before the
// store is touched.
func (s *Service) UpdatePost(id uuid.UUID, patch models.PostPatch) (*models.Post, error) {
	if patch.IsEmpty() {
		return nil, apperr.Validation("No valid fields to update")
	}

	post, err := s.posts.Update(id, patch)
	if err != nil {
		return nil, storeErr(err)
	}
	return post, nil
}

// DeletePost removes a post. Deleting an already-deleted id fails with the
// not-found error.
func (s *Service) DeletePost(id uuid.UUID) error {
	if err := s.posts.Delete(id); err != nil {
		return storeErr(err)
	}
	return nil
}

// ListCategories returns all categories ordered by name, falling back to
// the seed categories when the store is unreachable.
func (s *Service) ListCategories() ([]models.Category, error) {
	items, err := s.categories.List()
	if err != nil {
		if apperr.IsApp(err) {
			return nil, err
		}
		slog.Warn("category store unreachable, serving fallback data", "error", err)
		return fallback.Categories(), nil
	}
	if items == nil {
		items = []models.Category{}
	}
	return items, nil
}

// GetCategory resolves a category by id or slug over the listing, for
// detail pages. Not a distinct network operation.
func (s *Service) GetCategory(idOrSlug string) (*models.Category, error) {
	items, err := s.ListCategories()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Slug == idOrSlug || items[i].ID.String() == strings.ToLower(idOrSlug) {
			return &items[i], nil
		}
	}
	return nil, apperr.NotFound("Category not found")
}

// CreateCategory validates the name, derives the slug when absent, and
// inserts the category.
func (s *Service) CreateCategory(name, slugValue, description string) (*models.Category, error) {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 2 {
		return nil, apperr.Validation("Name must be at least 2 characters")
	}

	if slugValue == "" {
		slugValue = slug.Generate(name)
	}

	category, err := s.categories.Create(name, slugValue, description)
	if err != nil {
		return nil, storeErr(err)
	}
	return category, nil
}

// UpdateCategory replaces a category's name and description.
func (s *Service) UpdateCategory(id uuid.UUID, name, description string) (*models.Category, error) {
	category, err := s.categories.Update(id, name, description)
	if err != nil {
		return nil, storeErr(err)
	}
	return category, nil
}

// storeErr passes taxonomy errors through and wraps anything else as a
// store-unavailable failure, so handlers never see raw driver errors.
func storeErr(err error) error {
	if apperr.IsApp(err) {
		return err
	}
	return apperr.StoreUnavailable(err)
}
