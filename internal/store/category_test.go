// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"techly/internal/apperr"
)

func TestCategoryStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	slug := "test-cat-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, slug) })

	created, err := s.Create("Test Category", slug, "a category for testing")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.Description != "a category for testing" {
		t.Errorf("description: got %q", created.Description)
	}

	byID, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID == nil || byID.Slug != slug {
		t.Fatalf("FindByID returned %+v", byID)
	}

	bySlug, err := s.FindBySlug(slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if bySlug == nil || bySlug.ID != created.ID {
		t.Fatalf("FindBySlug returned %+v", bySlug)
	}
}

func TestCategoryStoreSlugConflict(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	slug := "test-conflict-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, slug) })

	if _, err := s.Create("Original", slug, ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := s.Create("Duplicate", slug, "")
	if !errors.Is(err, apperr.Conflict("")) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestCategoryStoreListOrdering(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	suffix := uuid.NewString()[:8]
	slugA := "test-order-a-" + suffix
	slugB := "test-order-b-" + suffix
	t.Cleanup(func() { cleanCategories(t, db, slugA, slugB) })

	// Insert out of name order.
	if _, err := s.Create("ZZZ Order "+suffix, slugB, ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create("AAA Order "+suffix, slugA, ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Name < items[i-1].Name {
			t.Fatalf("categories out of name order at %d: %q after %q", i, items[i].Name, items[i-1].Name)
		}
	}
}

func TestCategoryStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	slug := "test-update-cat-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategories(t, db, slug) })

	created, err := s.Create("Before", slug, "before")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := s.Update(created.ID, "After", "after")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "After" || updated.Description != "after" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Slug != slug {
		t.Errorf("slug changed on update: %q", updated.Slug)
	}

	_, err = s.Update(uuid.New(), "Ghost", "")
	if !errors.Is(err, apperr.NotFound("")) {
		t.Errorf("expected not-found for unknown id, got %v", err)
	}
}
