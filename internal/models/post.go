// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post represents a blog post joined with its author's display name and
// category name. Nullable columns map to pointer fields.
type Post struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Excerpt        *string    `json:"excerpt"`
	Content        string     `json:"content"`
	FeaturedImage  *string    `json:"featuredImage"`
	CategoryID     *uuid.UUID `json:"categoryId"`
	CategoryName   *string    `json:"categoryName,omitempty"`
	Author         string     `json:"author"`
	Tags           []string   `json:"tags"`
	Views          int        `json:"views"`
	SEOTitle       *string    `json:"seoTitle"`
	SEODescription *string    `json:"seoDescription"`
	IsPublished    bool       `json:"isPublished"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// PostFilter holds the recognized options for public post listing.
// Zero values mean "not set"; Limit defaults to 10 and Offset to 0.
type PostFilter struct {
	Limit    int
	Offset   int
	Search   string // case-insensitive substring match on title OR content
	Category string // UUID-shaped value matches category id, anything else matches category slug
	Tag      string // exact membership match against the tags array
}

// PostPatch is a partial update with a fixed set of optional fields.
// A nil field is left untouched; a non-nil field replaces the stored value.
type PostPatch struct {
	Title          *string
	Slug           *string
	Content        *string
	Excerpt        *string
	CategoryID     *uuid.UUID
	IsPublished    *bool
	FeaturedImage  *string
	Tags           *[]string
	SEOTitle       *string
	SEODescription *string
}

// IsEmpty reports whether no field of the patch is set.
func (p *PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Slug == nil && p.Content == nil &&
		p.Excerpt == nil && p.CategoryID == nil && p.IsPublished == nil &&
		p.FeaturedImage == nil && p.Tags == nil &&
		p.SEOTitle == nil && p.SEODescription == nil
}

// PostRef identifies a post either by UUID or by slug. The classification
// happens once at the boundary; query code never shape-sniffs.
type PostRef struct {
	ID   uuid.UUID
	Slug string
}

// ByID reports whether the reference carries a UUID.
func (r PostRef) ByID() bool {
	return r.ID != uuid.Nil
}

// uuidShape matches the canonical hyphenated UUID form. A slug that merely
// parses as some other UUID representation is still treated as a slug.
var uuidShape = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ParsePostRef classifies a raw path segment as a post id or a slug.
// UUID-shaped input takes precedence; a slug that happens to look like a
// UUID is not supported.
func ParsePostRef(raw string) PostRef {
	if LooksLikeUUID(raw) {
		if id, err := uuid.Parse(raw); err == nil {
			return PostRef{ID: id}
		}
	}
	return PostRef{Slug: raw}
}

// LooksLikeUUID reports whether s has the canonical UUID shape,
// case-insensitively.
func LooksLikeUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	return uuidShape.MatchString(strings.ToLower(s))
}
