// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"carewell/internal/cache"
	"carewell/internal/models"
	"carewell/internal/render"
)

// ServicesPage lists all services for the admin panel.
func (a *Admin) ServicesPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "services", &render.PageData{
		Title:   "Services",
		Section: "services",
		Data:    map[string]any{"services": a.services.List()},
	})
}

// ServiceNewPage renders an empty service form.
func (a *Admin) ServiceNewPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "service_form", &render.PageData{
		Title:   "New Service",
		Section: "services",
		Data: map[string]any{
			"service":    &models.Service{},
			"action":     "/admin/services",
			"categories": a.categories.List(),
		},
	})
}

// ServiceEditPage renders the edit form for an existing service.
func (a *Admin) ServiceEditPage(w http.ResponseWriter, r *http.Request) {
	svc := a.findService(w, r)
	if svc == nil {
		return
	}

	a.renderer.Page(w, r, "service_form", &render.PageData{
		Title:   "Edit Service",
		Section: "services",
		Data: map[string]any{
			"service":    svc,
			"action":     "/admin/services/" + svc.ID.String(),
			"categories": a.categories.List(),
		},
	})
}

// ServiceCreate inserts a new service from the form.
func (a *Admin) ServiceCreate(w http.ResponseWriter, r *http.Request) {
	svc := &models.Service{}
	a.fillServiceForm(svc, r)

	if msg := validateService(svc); msg != "" {
		a.serviceFormError(w, r, svc, "/admin/services", msg)
		return
	}

	created, err := a.services.Create(svc)
	if err != nil {
		slog.Error("create service failed", "error", err)
		a.serviceFormError(w, r, svc, "/admin/services", "Could not save the service. Is the slug already in use?")
		return
	}

	a.invalidate(r.Context(), cache.EntityService, created.Slug)
	http.Redirect(w, r, "/admin/services", http.StatusSeeOther)
}

// ServiceUpdate saves changes to an existing service.
func (a *Admin) ServiceUpdate(w http.ResponseWriter, r *http.Request) {
	svc := a.findService(w, r)
	if svc == nil {
		return
	}

	oldSlug := svc.Slug
	a.fillServiceForm(svc, r)

	if msg := validateService(svc); msg != "" {
		a.serviceFormError(w, r, svc, "/admin/services/"+svc.ID.String(), msg)
		return
	}

	if err := a.services.Update(svc); err != nil {
		slog.Error("update service failed", "id", svc.ID, "error", err)
		a.serviceFormError(w, r, svc, "/admin/services/"+svc.ID.String(), "Could not save the service. Is the slug already in use?")
		return
	}

	a.invalidate(r.Context(), cache.EntityService, oldSlug)
	if svc.Slug != oldSlug {
		a.invalidate(r.Context(), cache.EntityService, svc.Slug)
	}
	http.Redirect(w, r, "/admin/services", http.StatusSeeOther)
}

// ServiceDelete removes a service and re-renders the list.
func (a *Admin) ServiceDelete(w http.ResponseWriter, r *http.Request) {
	svc := a.findService(w, r)
	if svc == nil {
		return
	}

	if err := a.services.Delete(svc.ID); err != nil {
		slog.Error("delete service failed", "id", svc.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context(), cache.EntityService, svc.Slug)
	a.ServicesPage(w, r)
}

// fillServiceForm copies form values onto the service. The slug is left
// blank when the field is blank, so the store derives it from the name.
func (a *Admin) fillServiceForm(svc *models.Service, r *http.Request) {
	svc.Name = strings.TrimSpace(r.FormValue("name"))
	svc.Slug = strings.TrimSpace(r.FormValue("slug"))
	svc.Category = strings.TrimSpace(r.FormValue("category"))
	svc.ShortDescription = strings.TrimSpace(r.FormValue("short_description"))
	svc.HeroImageURL = strings.TrimSpace(r.FormValue("hero_image_url"))
	svc.BodyMarkdown = r.FormValue("body_markdown")
	svc.AudienceMarkdown = r.FormValue("audience_markdown")
	svc.FeaturesRaw = r.FormValue("features_markdown")
}

func (a *Admin) serviceFormError(w http.ResponseWriter, r *http.Request, svc *models.Service, action, msg string) {
	a.renderer.Page(w, r, "service_form", &render.PageData{
		Title:   "Service",
		Section: "services",
		Flashes: []render.Flash{{Type: "error", Message: msg}},
		Data: map[string]any{
			"service":    svc,
			"action":     action,
			"categories": a.categories.List(),
		},
	})
}

// findService resolves the {id} URL parameter to a service, writing the
// appropriate error response and returning nil when it cannot.
func (a *Admin) findService(w http.ResponseWriter, r *http.Request) *models.Service {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil
	}

	svc, err := a.services.FindByID(id)
	if err != nil {
		slog.Error("find service failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}
	if svc == nil {
		http.NotFound(w, r)
		return nil
	}
	return svc
}
