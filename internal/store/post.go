// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"techly/internal/apperr"
	"techly/internal/models"
)

// PostStore handles all post-related database operations. Every read joins
// the author's display name and the category name so callers always receive
// the fully resolved record.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postSelect = `
	SELECT p.id, p.title, p.slug, p.excerpt, p.content, p.featured_image,
	       p.category_id, p.tags, p.seo_title, p.seo_description,
	       p.views, p.is_published, p.created_at, p.updated_at,
	       u.username AS author_name, c.name AS category_name
	FROM posts p
	LEFT JOIN users u ON p.author_id = u.id
	LEFT JOIN categories c ON p.category_id = c.id`

// scanPost scans one joined post row. Tags come back as a PostgreSQL TEXT[]
// and go through the pgtype codec map.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	var authorName sql.NullString
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage,
		&p.CategoryID, pgMap.SQLScanner(&p.Tags), &p.SEOTitle, &p.SEODescription,
		&p.Views, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
		&authorName, &p.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	if authorName.Valid {
		p.Author = authorName.String
	} else {
		p.Author = "Unknown"
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

// List returns published posts matching the filter, ordered by creation time
// descending. Search matches title OR content case-insensitively; a
// UUID-shaped category value matches the category id, anything else the
// category slug; tag is an exact membership match.
func (s *PostStore) List(f models.PostFilter) ([]models.Post, error) {
	query := postSelect + ` WHERE p.is_published = true`
	var params []any

	if f.Search != "" {
		params = append(params, "%"+f.Search+"%")
		query += fmt.Sprintf(" AND (p.title ILIKE $%d OR p.content ILIKE $%d)", len(params), len(params))
	}

	if f.Category != "" {
		params = append(params, f.Category)
		if models.LooksLikeUUID(f.Category) {
			query += fmt.Sprintf(" AND p.category_id = $%d", len(params))
		} else {
			query += fmt.Sprintf(" AND c.slug = $%d", len(params))
		}
	}

	if f.Tag != "" {
		params = append(params, f.Tag)
		query += fmt.Sprintf(" AND $%d = ANY(p.tags)", len(params))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	params = append(params, limit, offset)
	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(params)-1, len(params))

	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// ListAll returns every post regardless of published state, ordered by
// creation time descending. Callers must gate this behind admin authorization.
func (s *PostStore) ListAll() ([]models.Post, error) {
	rows, err := s.db.Query(postSelect + ` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// collectPosts drains rows into a slice of posts.
func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Find retrieves a post by id or slug, drafts included. Returns nil if no
// row matches; visibility rules are the caller's concern.
func (s *PostStore) Find(ref models.PostRef) (*models.Post, error) {
	var row *sql.Row
	if ref.ByID() {
		row = s.db.QueryRow(postSelect+` WHERE p.id = $1`, ref.ID)
	} else {
		row = s.db.QueryRow(postSelect+` WHERE p.slug = $1`, ref.Slug)
	}

	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	return p, nil
}

// IncrementViews bumps a post's view counter by one. Issued fire-and-forget
// by the read path; the counter only ever increases.
func (s *PostStore) IncrementViews(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// CreatePostParams carries the fields for a new post. The author is the
// authenticated caller, resolved by the service layer.
type CreatePostParams struct {
	Title          string
	Slug           string
	Content        string
	Excerpt        *string
	CategoryID     *uuid.UUID
	AuthorID       uuid.UUID
	IsPublished    bool
	FeaturedImage  *string
	Tags           []string
	SEOTitle       *string
	SEODescription *string
}

// Create inserts a new post and returns the fully joined record. A slug
// collision maps to the conflict error.
func (s *PostStore) Create(in CreatePostParams) (*models.Post, error) {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO posts (
			title, slug, content, excerpt, category_id, author_id, is_published,
			featured_image, tags, seo_title, seo_description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, in.Title, in.Slug, in.Content, in.Excerpt, in.CategoryID, in.AuthorID,
		in.IsPublished, in.FeaturedImage, tags, in.SEOTitle, in.SEODescription,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("A post with this slug already exists")
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	return s.Find(models.PostRef{ID: id})
}

// Update applies a partial patch to a post. Only non-nil patch fields are
// written; updated_at is always refreshed. Returns the joined record, the
// not-found error if the id does not exist, or the conflict error on a slug
// collision.
func (s *PostStore) Update(id uuid.UUID, patch models.PostPatch) (*models.Post, error) {
	var sets []string
	var params []any

	set := func(column string, value any) {
		params = append(params, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(params)))
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Slug != nil {
		set("slug", *patch.Slug)
	}
	if patch.Content != nil {
		set("content", *patch.Content)
	}
	if patch.Excerpt != nil {
		set("excerpt", *patch.Excerpt)
	}
	if patch.CategoryID != nil {
		set("category_id", *patch.CategoryID)
	}
	if patch.IsPublished != nil {
		set("is_published", *patch.IsPublished)
	}
	if patch.FeaturedImage != nil {
		set("featured_image", *patch.FeaturedImage)
	}
	if patch.Tags != nil {
		set("tags", *patch.Tags)
	}
	if patch.SEOTitle != nil {
		set("seo_title", *patch.SEOTitle)
	}
	if patch.SEODescription != nil {
		set("seo_description", *patch.SEODescription)
	}

	if len(sets) == 0 {
		return nil, apperr.Validation("No valid fields to update")
	}

	params = append(params, id)
	query := fmt.Sprintf(
		"UPDATE posts SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(params),
	)

	result, err := s.db.Exec(query, params...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("A post with this slug already exists")
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("Post not found")
	}

	return s.Find(models.PostRef{ID: id})
}

// Delete removes a post by ID. Deleting an absent post returns the
// not-found error, so a second delete of the same id fails rather than
// silently succeeding.
func (s *PostStore) Delete(id uuid.UUID) error {
	var deleted uuid.UUID
	err := s.db.QueryRow(`DELETE FROM posts WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err == sql.ErrNoRows {
		return apperr.NotFound("Post not found")
	}
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
