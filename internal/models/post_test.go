package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestParsePostRef(t *testing.T) {
	id := uuid.MustParse("3f2504e0-4f89-41d3-9a0c-0305e82c3301")

	tests := []struct {
		name    string
		raw     string
		wantID  bool
		wantVal string
	}{
		{name: "canonical uuid", raw: "3f2504e0-4f89-41d3-9a0c-0305e82c3301", wantID: true},
		{name: "uppercase uuid", raw: "3F2504E0-4F89-41D3-9A0C-0305E82C3301", wantID: true},
		{name: "plain slug", raw: "my-first-post", wantID: false, wantVal: "my-first-post"},
		{name: "slug of uuid length", raw: "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz", wantID: false, wantVal: "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"},
		{name: "unhyphenated hex", raw: "3f2504e04f8941d39a0c0305e82c3301", wantID: false, wantVal: "3f2504e04f8941d39a0c0305e82c3301"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParsePostRef(tt.raw)
			if ref.ByID() != tt.wantID {
				t.Fatalf("ByID() = %v, want %v", ref.ByID(), tt.wantID)
			}
			if tt.wantID && ref.ID != id {
				t.Errorf("ID = %s, want %s", ref.ID, id)
			}
			if !tt.wantID && ref.Slug != tt.wantVal {
				t.Errorf("Slug = %q, want %q", ref.Slug, tt.wantVal)
			}
		})
	}
}

func TestLooksLikeUUID(t *testing.T) {
	if !LooksLikeUUID("3f2504e0-4f89-41d3-9a0c-0305e82c3301") {
		t.Error("expected canonical uuid shape to match")
	}
	if LooksLikeUUID("devops") {
		t.Error("expected slug not to match")
	}
	if LooksLikeUUID("3f2504e0-4f89-41d3-9a0c-0305e82c330") {
		t.Error("expected truncated uuid not to match")
	}
}

func TestPostPatchIsEmpty(t *testing.T) {
	var patch PostPatch
	if !patch.IsEmpty() {
		t.Error("zero patch should be empty")
	}

	title := "New Title"
	patch.Title = &title
	if patch.IsEmpty() {
		t.Error("patch with a title should not be empty")
	}

	published := false
	onlyFlag := PostPatch{IsPublished: &published}
	if onlyFlag.IsEmpty() {
		t.Error("patch with an explicit false flag should not be empty")
	}
}
