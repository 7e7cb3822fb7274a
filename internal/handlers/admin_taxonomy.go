// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"carewell/internal/cache"
	"carewell/internal/models"
	"carewell/internal/render"
)

// CategoriesPage lists service categories with the inline add form.
func (a *Admin) CategoriesPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "categories", &render.PageData{
		Title:   "Categories",
		Section: "categories",
		Data:    map[string]any{"categories": a.categories.List()},
	})
}

// CategoryCreate adds a category. The slug always comes from the name.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		a.renderer.Page(w, r, "categories", &render.PageData{
			Title:   "Categories",
			Section: "categories",
			Flashes: []render.Flash{{Type: "error", Message: "Name is required."}},
			Data:    map[string]any{"categories": a.categories.List()},
		})
		return
	}

	_, err := a.categories.Create(&models.ServiceCategory{
		Name:        name,
		Description: strings.TrimSpace(r.FormValue("description")),
	})
	if err != nil {
		slog.Error("create category failed", "error", err)
		a.renderer.Page(w, r, "categories", &render.PageData{
			Title:   "Categories",
			Section: "categories",
			Flashes: []render.Flash{{Type: "error", Message: "Could not save the category. Does one with this name already exist?"}},
			Data:    map[string]any{"categories": a.categories.List()},
		})
		return
	}

	a.invalidate(r.Context(), cache.EntityCategory, "")
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryDelete removes a category. Services keep their category value;
// they simply fall out of the grouped public listing.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := a.categories.Delete(id); err != nil {
		slog.Error("delete category failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context(), cache.EntityCategory, "")
	a.CategoriesPage(w, r)
}

// SpecialtiesPage lists specialties along with the section header editor.
func (a *Admin) SpecialtiesPage(w http.ResponseWriter, r *http.Request) {
	specialties, err := a.specialties.List()
	if err != nil {
		slog.Error("list specialties failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "specialties", &render.PageData{
		Title:   "Specialties",
		Section: "specialties",
		Data: map[string]any{
			"header":      a.spHeader.GetOrDefault(),
			"specialties": specialties,
		},
	})
}

// SpecialtiesHeaderSubmit saves the specialties section header singleton.
func (a *Admin) SpecialtiesHeaderSubmit(w http.ResponseWriter, r *http.Request) {
	h := models.SpecialtiesHeader{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	if err := a.spHeader.Update(h); err != nil {
		slog.Error("specialties header update failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context(), cache.EntitySpecialty, "")
	http.Redirect(w, r, "/admin/specialties", http.StatusSeeOther)
}

// SpecialtyCreate adds a specialty. The slug always comes from the name.
func (a *Admin) SpecialtyCreate(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Redirect(w, r, "/admin/specialties", http.StatusSeeOther)
		return
	}

	sortOrder, _ := strconv.Atoi(r.FormValue("sort_order"))

	_, err := a.specialties.Create(&models.ServiceSpecialty{
		Name:        name,
		Description: strings.TrimSpace(r.FormValue("description")),
		IsActive:    r.FormValue("is_active") == "1",
		SortOrder:   sortOrder,
	})
	if err != nil {
		slog.Error("create specialty failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context(), cache.EntitySpecialty, "")
	http.Redirect(w, r, "/admin/specialties", http.StatusSeeOther)
}

// SpecialtyDelete removes a specialty and re-renders the list.
func (a *Admin) SpecialtyDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := a.specialties.Delete(id); err != nil {
		slog.Error("delete specialty failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context(), cache.EntitySpecialty, "")
	a.SpecialtiesPage(w, r)
}
