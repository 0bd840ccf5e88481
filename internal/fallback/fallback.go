// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fallback holds the immutable seed dataset served on public read
// paths when the live store is unreachable. The data is fixed at compile
// time; accessors return copies and apply the same filtering rules as the
// live queries (published-only included).
package fallback

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"techly/internal/models"
)

var (
	catSoftware = uuid.MustParse("7b6a1f10-0c6e-4f4e-9b2a-3f8d1c5a9e01")
	catDevOps   = uuid.MustParse("7b6a1f10-0c6e-4f4e-9b2a-3f8d1c5a9e02")
	catAIML     = uuid.MustParse("7b6a1f10-0c6e-4f4e-9b2a-3f8d1c5a9e03")
	catWebDev   = uuid.MustParse("7b6a1f10-0c6e-4f4e-9b2a-3f8d1c5a9e04")
)

var seedTime = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

var categories = []models.Category{
	{
		ID:          catSoftware,
		Name:        "Software Engineering",
		Slug:        "software-engineering",
		Description: "Best practices, architecture, and coding patterns.",
		CreatedAt:   seedTime,
	},
	{
		ID:          catDevOps,
		Name:        "DevOps",
		Slug:        "devops",
		Description: "CI/CD, Kubernetes, and cloud infrastructure.",
		CreatedAt:   seedTime,
	},
	{
		ID:          catAIML,
		Name:        "AI & Machine Learning",
		Slug:        "ai-ml",
		Description: "Generative AI, LLMs, and data science.",
		CreatedAt:   seedTime,
	},
	{
		ID:          catWebDev,
		Name:        "Web Development",
		Slug:        "web-dev",
		Description: "Modern frontend frameworks, CSS, and accessibility.",
		CreatedAt:   seedTime,
	},
}

var posts = []models.Post{
	{
		ID:      uuid.MustParse("a3f2c4d6-1e2b-4c5d-8e9f-101112131401"),
		Title:   "The Future of React Server Components",
		Slug:    "future-of-react-server-components",
		Excerpt: ptr("Understanding how RSC changes the paradigm of modern web development and what it means for your next project."),
		Content: `React Server Components (RSC) represent a major shift in how we build React applications.

## What are Server Components?

Traditionally, React components run on the client. With RSC, components can run on the server, allowing them to access the database directly and send only the rendered HTML to the client.

### Key Benefits
1. **Zero Bundle Size**: Dependencies used in Server Components aren't sent to the client.
2. **Direct Backend Access**: Query your database directly inside your component.
3. **Automatic Code Splitting**: Server components help split your client bundles automatically.

This shift requires a mental model change but offers significant performance improvements for data-heavy applications.`,
		FeaturedImage:  ptr("https://picsum.photos/seed/react/800/400"),
		CategoryID:     &catSoftware,
		CategoryName:   ptr("Software Engineering"),
		Author:         "Alex Dev",
		Tags:           []string{"React", "Frontend", "Performance"},
		Views:          1250,
		SEOTitle:       ptr("React Server Components Guide"),
		SEODescription: ptr("A deep dive into React Server Components."),
		IsPublished:    true,
		CreatedAt:      seedTime.AddDate(0, 0, -5),
		UpdatedAt:      seedTime.AddDate(0, 0, -5),
	},
	{
		ID:      uuid.MustParse("a3f2c4d6-1e2b-4c5d-8e9f-101112131402"),
		Title:   "Scaling Kubernetes Clusters Without Losing Sleep",
		Slug:    "scaling-kubernetes-clusters-without-losing-sleep",
		Excerpt: ptr("Practical autoscaling, node pools, and the operational habits that keep large Kubernetes fleets boring."),
		Content: `Running Kubernetes at scale is less about YAML and more about discipline.

## Autoscaling Layers

Kubernetes gives you three levers: the horizontal pod autoscaler, the vertical pod autoscaler, and the cluster autoscaler. Use them together, not interchangeably.

- Set resource requests from observed usage, not guesses.
- Keep node pools homogeneous per workload class.
- Budget for surge capacity before you need it.

## The Boring Parts Matter

1. **Upgrades**: Automate them or they will not happen.
2. **Alerts**: Page on symptoms, log everything else.

A quiet cluster is a well-run cluster.`,
		FeaturedImage:  ptr("https://picsum.photos/seed/k8s/800/400"),
		CategoryID:     &catDevOps,
		CategoryName:   ptr("DevOps"),
		Author:         "Priya Ops",
		Tags:           []string{"Kubernetes", "Cloud", "SRE"},
		Views:          980,
		SEOTitle:       ptr("Scaling Kubernetes Clusters"),
		SEODescription: ptr("Operational habits for large Kubernetes fleets."),
		IsPublished:    true,
		CreatedAt:      seedTime.AddDate(0, 0, -3),
		UpdatedAt:      seedTime.AddDate(0, 0, -3),
	},
	{
		ID:      uuid.MustParse("a3f2c4d6-1e2b-4c5d-8e9f-101112131403"),
		Title:   "Prompt Engineering Is Software Engineering",
		Slug:    "prompt-engineering-is-software-engineering",
		Excerpt: ptr("Treating prompts as versioned, tested artifacts instead of magic strings."),
		Content: `LLM prompts deserve the same rigor as any other interface in your system.

## Version Your Prompts

A prompt change is a behavior change. Check prompts into source control, review them, and tie them to evaluation runs.

### A Minimal Workflow
1. **Write**: Draft the prompt alongside its expected outputs.
2. **Evaluate**: Run it against a fixed test set before shipping.

- Keep a changelog of prompt revisions.
- Never interpolate untrusted input without escaping.

The teams that win with AI are the ones that treat it as engineering, not incantation.`,
		FeaturedImage:  ptr("https://picsum.photos/seed/llm/800/400"),
		CategoryID:     &catAIML,
		CategoryName:   ptr("AI & Machine Learning"),
		Author:         "Sam Data",
		Tags:           []string{"AI", "LLM", "Testing"},
		Views:          2110,
		SEOTitle:       ptr("Prompt Engineering Workflow"),
		SEODescription: ptr("Versioning and testing LLM prompts."),
		IsPublished:    true,
		CreatedAt:      seedTime.AddDate(0, 0, -2),
		UpdatedAt:      seedTime.AddDate(0, 0, -2),
	},
	{
		ID:      uuid.MustParse("a3f2c4d6-1e2b-4c5d-8e9f-101112131404"),
		Title:   "Modern CSS Layout Without the Framework",
		Slug:    "modern-css-layout-without-the-framework",
		Excerpt: ptr("Grid, container queries, and logical properties cover most of what utility frameworks promise."),
		Content: `The platform caught up. Most layouts no longer need a CSS framework at all.

## Three Features That Changed Everything

- **Grid**: Two-dimensional layout with a few lines of CSS.
- **Container queries**: Components that respond to their own size.
- **Logical properties**: Internationalization-friendly spacing for free.

Start your next project with a blank stylesheet and see how far you get.`,
		FeaturedImage:  ptr("https://picsum.photos/seed/css/800/400"),
		CategoryID:     &catWebDev,
		CategoryName:   ptr("Web Development"),
		Author:         "Alex Dev",
		Tags:           []string{"CSS", "Frontend"},
		Views:          640,
		SEOTitle:       ptr("Modern CSS Layout"),
		SEODescription: ptr("Grid, container queries, and logical properties."),
		IsPublished:    true,
		CreatedAt:      seedTime.AddDate(0, 0, -1),
		UpdatedAt:      seedTime.AddDate(0, 0, -1),
	},
	{
		ID:      uuid.MustParse("a3f2c4d6-1e2b-4c5d-8e9f-101112131405"),
		Title:   "Draft: Observability Beyond the Three Pillars",
		Slug:    "observability-beyond-the-three-pillars",
		Excerpt: ptr("Work in progress."),
		Content: `Logs, metrics, and traces are table stakes. The interesting work starts with correlation across all three.`,
		CategoryID:     &catDevOps,
		CategoryName:   ptr("DevOps"),
		Author:         "Priya Ops",
		Tags:           []string{"Observability"},
		Views:          0,
		IsPublished:    false,
		CreatedAt:      seedTime,
		UpdatedAt:      seedTime,
	},
}

func ptr(s string) *string { return &s }

// Categories returns the seed categories ordered by name ascending.
func Categories() []models.Category {
	out := slices.Clone(categories)
	slices.SortFunc(out, func(a, b models.Category) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Posts returns published seed posts matching the filter, newest first,
// applying the same search, category, tag, and pagination rules as the
// live store.
func Posts(f models.PostFilter) []models.Post {
	var out []models.Post
	for _, p := range posts {
		if !p.IsPublished {
			continue
		}
		if !matches(p, f) {
			continue
		}
		out = append(out, clonePost(p))
	}

	slices.SortFunc(out, func(a, b models.Post) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(out) {
		return []models.Post{}
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FindPost looks up a published seed post by id or slug. Returns nil if
// absent or unpublished.
func FindPost(ref models.PostRef) *models.Post {
	for _, p := range posts {
		if !p.IsPublished {
			continue
		}
		if (ref.ByID() && p.ID == ref.ID) || (!ref.ByID() && p.Slug == ref.Slug) {
			c := clonePost(p)
			return &c
		}
	}
	return nil
}

// matches applies the public listing filter to a single post.
func matches(p models.Post, f models.PostFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Content), needle) {
			return false
		}
	}

	if f.Category != "" {
		if models.LooksLikeUUID(f.Category) {
			if p.CategoryID == nil || p.CategoryID.String() != strings.ToLower(f.Category) {
				return false
			}
		} else if !categorySlugMatches(p.CategoryID, f.Category) {
			return false
		}
	}

	if f.Tag != "" && !slices.Contains(p.Tags, f.Tag) {
		return false
	}

	return true
}

// categorySlugMatches resolves a post's category id to its seed slug.
func categorySlugMatches(id *uuid.UUID, slug string) bool {
	if id == nil {
		return false
	}
	for _, c := range categories {
		if c.ID == *id {
			return c.Slug == slug
		}
	}
	return false
}

// clonePost copies a post so callers cannot mutate the seed data through
// the shared tags slice.
func clonePost(p models.Post) models.Post {
	p.Tags = slices.Clone(p.Tags)
	return p
}
