package store

import (
	"testing"

	"github.com/google/uuid"

	"techly/internal/models"
)

func TestUserStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-create-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	created, err := s.Create(email, "hunter2secret", "Test Author", models.RoleEditor)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.PasswordHash == "hunter2secret" {
		t.Error("password stored in plaintext")
	}
	if created.Role != models.RoleEditor {
		t.Errorf("role: got %q, want %q", created.Role, models.RoleEditor)
	}

	found, err := s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("FindByEmail returned %+v", found)
	}

	byID, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID == nil || byID.Email != email {
		t.Fatalf("FindByID returned %+v", byID)
	}
}

func TestUserStoreFindAbsent(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	found, err := s.FindByEmail("nobody-" + uuid.NewString()[:8] + "@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found != nil {
		t.Error("expected nil for unknown email")
	}

	found, err = s.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-dup-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	if _, err := s.Create(email, "hunter2secret", "First", models.RoleEditor); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(email, "hunter2secret", "Second", models.RoleEditor); err == nil {
		t.Error("expected error for duplicate email")
	}
}

func TestUserStoreCheckPassword(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-pass-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	u, err := s.Create(email, "correct-horse", "Pass Check", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !s.CheckPassword(u, "correct-horse") {
		t.Error("correct password rejected")
	}
	if s.CheckPassword(u, "wrong-horse") {
		t.Error("wrong password accepted")
	}
}
