// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"techly/internal/apperr"
	"techly/internal/blog"
	"techly/internal/content"
	"techly/internal/middleware"
	"techly/internal/models"
)

// Posts groups the post handlers, public and admin.
type Posts struct {
	svc *blog.Service
}

// NewPosts creates a new Posts handler group.
func NewPosts(svc *blog.Service) *Posts {
	return &Posts{svc: svc}
}

// postView decorates a post with display fields derived from its content.
// The detail view additionally carries the rendered markup blocks.
type postView struct {
	*models.Post
	ReadTime int            `json:"readTime"`
	Blocks   []content.Node `json:"blocks,omitempty"`
}

// List handles GET /posts: published posts with filter and pagination
// query parameters (limit, offset, search, category, tag).
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.PostFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil {
		filter.Offset = v
	}

	posts, err := h.svc.ListPosts(filter)
	if err != nil {
		respondError(w, err)
		return
	}

	views := make([]postView, len(posts))
	for i := range posts {
		views[i] = postView{Post: &posts[i], ReadTime: content.ReadTime(posts[i].Content)}
	}
	respondData(w, http.StatusOK, views)
}

// Get handles GET /posts/{slugOrId}: one published post, addressed by slug
// or canonical UUID. The reference is classified here, once, at the boundary.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	ref := models.ParsePostRef(chi.URLParam(r, "slugOrId"))

	post, err := h.svc.GetPost(ref)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, postView{
		Post:     post,
		ReadTime: content.ReadTime(post.Content),
		Blocks:   content.Render(post.Content),
	})
}

// AdminList handles GET /admin/posts: every post including drafts.
func (h *Posts) AdminList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListAllPosts()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, posts)
}

// createPostRequest is the POST /posts payload. Field names follow the
// public API contract.
type createPostRequest struct {
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Content        string   `json:"content"`
	Excerpt        *string  `json:"excerpt"`
	CategoryID     *string  `json:"category_id"`
	FeaturedImage  *string  `json:"featuredImage"`
	Tags           []string `json:"tags"`
	SEOTitle       *string  `json:"seoTitle"`
	SEODescription *string  `json:"seoDescription"`
	IsPublished    bool     `json:"is_published"`
}

// Create handles POST /posts. The authenticated caller becomes the author.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromCtx(r.Context())
	if identity == nil {
		respondError(w, apperr.Unauthenticated("Unauthorized: No token provided"))
		return
	}

	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		respondError(w, err)
		return
	}

	post, err := h.svc.CreatePost(identity.UserID, blog.CreatePostInput{
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		CategoryID:     categoryID,
		IsPublished:    req.IsPublished,
		FeaturedImage:  req.FeaturedImage,
		Tags:           req.Tags,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, post)
}

// updatePostRequest is the PUT /posts/{id} payload: a fixed set of optional
// fields. Absent fields are left untouched; unknown fields are ignored by
// the decoder.
type updatePostRequest struct {
	Title          *string   `json:"title"`
	Slug           *string   `json:"slug"`
	Content        *string   `json:"content"`
	Excerpt        *string   `json:"excerpt"`
	CategoryID     *string   `json:"categoryId"`
	IsPublished    *bool     `json:"isPublished"`
	FeaturedImage  *string   `json:"featuredImage"`
	Tags           *[]string `json:"tags"`
	SEOTitle       *string   `json:"seoTitle"`
	SEODescription *string   `json:"seoDescription"`
}

// Update handles PUT /posts/{id}: a partial update refreshing updatedAt.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req updatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	patch := models.PostPatch{
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		IsPublished:    req.IsPublished,
		FeaturedImage:  req.FeaturedImage,
		Tags:           req.Tags,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}
	if req.CategoryID != nil {
		categoryID, err := parseOptionalUUID(req.CategoryID)
		if err != nil {
			respondError(w, err)
			return
		}
		patch.CategoryID = categoryID
	}

	post, err := h.svc.UpdatePost(id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, post)
}

// Delete handles DELETE /posts/{id}. A second delete of the same id fails
// with not-found.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.svc.DeletePost(id); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// parsePathID reads the {id} path parameter as a UUID.
func parsePathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperr.Validation("Invalid id")
	}
	return id, nil
}

// parseOptionalUUID parses a nullable UUID string from a request payload.
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, apperr.Validation("Invalid category id")
	}
	return &id, nil
}
