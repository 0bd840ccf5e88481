// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"techly/internal/blog"
)

// Categories groups the category handlers.
type Categories struct {
	svc *blog.Service
}

// NewCategories creates a new Categories handler group.
func NewCategories(svc *blog.Service) *Categories {
	return &Categories{svc: svc}
}

// List handles GET /categories: all categories ordered by name.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, categories)
}

// categoryRequest is the create/update payload.
type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// Create handles POST /categories. The slug defaults to the derived form
// of the name.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	category, err := h.svc.CreateCategory(req.Name, req.Slug, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, category)
}

// Update handles PUT /categories/{id}: full replace of name and description.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	category, err := h.svc.UpdateCategory(id, req.Name, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, category)
}
