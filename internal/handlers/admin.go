// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"carewell/internal/cache"
	"carewell/internal/models"
	"carewell/internal/render"
	"carewell/internal/storage"
	"carewell/internal/store"
)

// Admin groups all admin-panel HTTP handlers. Every store it needs is
// injected; storageClient and pageCache may be nil when the corresponding
// backing service is not configured.
type Admin struct {
	renderer      *render.Renderer
	services      *store.ServiceStore
	posts         *store.BlogPostStore
	categories    *store.CategoryStore
	specialties   *store.SpecialtyStore
	spHeader      *store.SpecialtiesHeaderStore
	hero          *store.HeroStore
	settings      *store.SiteSettingStore
	staff         *store.StaffStore
	testimonials  *store.TestimonialStore
	submissions   *store.SubmissionStore
	media         *store.MediaStore
	users         *store.UserStore
	storageClient *storage.Client
	pageCache     *cache.PageCache
}

// AdminDeps bundles the dependencies for the admin handler group.
type AdminDeps struct {
	Renderer      *render.Renderer
	Services      *store.ServiceStore
	Posts         *store.BlogPostStore
	Categories    *store.CategoryStore
	Specialties   *store.SpecialtyStore
	SpHeader      *store.SpecialtiesHeaderStore
	Hero          *store.HeroStore
	Settings      *store.SiteSettingStore
	Staff         *store.StaffStore
	Testimonials  *store.TestimonialStore
	Submissions   *store.SubmissionStore
	Media         *store.MediaStore
	Users         *store.UserStore
	StorageClient *storage.Client
	PageCache     *cache.PageCache
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(d AdminDeps) *Admin {
	return &Admin{
		renderer:      d.Renderer,
		services:      d.Services,
		posts:         d.Posts,
		categories:    d.Categories,
		specialties:   d.Specialties,
		spHeader:      d.SpHeader,
		hero:          d.Hero,
		settings:      d.Settings,
		staff:         d.Staff,
		testimonials:  d.Testimonials,
		submissions:   d.Submissions,
		media:         d.Media,
		users:         d.Users,
		storageClient: d.StorageClient,
		pageCache:     d.PageCache,
	}
}

// invalidate drops the cached public pages touched by a change to the
// given entity. No-op when the page cache is not configured.
func (a *Admin) invalidate(ctx context.Context, entity cache.Entity, slug string) {
	if a.pageCache == nil {
		return
	}
	a.pageCache.Invalidate(ctx, cache.PathsFor(entity, slug)...)
}

// Dashboard renders the admin dashboard with content counts. A failing
// count logs and shows zero rather than taking the whole page down.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	serviceCount, err := a.services.Count()
	if err != nil {
		slog.Error("dashboard service count failed", "error", err)
	}
	postCount, err := a.posts.Count()
	if err != nil {
		slog.Error("dashboard post count failed", "error", err)
	}
	newSubmissions, err := a.submissions.CountNewSubmissions()
	if err != nil {
		slog.Error("dashboard submission count failed", "error", err)
	}
	mediaCount, err := a.media.Count()
	if err != nil {
		slog.Error("dashboard media count failed", "error", err)
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"serviceCount":   serviceCount,
			"postCount":      postCount,
			"newSubmissions": newSubmissions,
			"mediaCount":     mediaCount,
		},
	})
}

// HeroPage renders the home hero editor.
func (a *Admin) HeroPage(w http.ResponseWriter, r *http.Request) {
	hero := a.hero.GetOrDefault()
	a.renderer.Page(w, r, "hero", &render.PageData{
		Title:   "Home Hero",
		Section: "hero",
		Data:    map[string]any{"hero": hero},
	})
}

// HeroSubmit saves the hero singleton and invalidates affected pages.
func (a *Admin) HeroSubmit(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		a.renderer.Page(w, r, "hero", &render.PageData{
			Title:   "Home Hero",
			Section: "hero",
			Flashes: []render.Flash{{Type: "error", Message: "Title is required."}},
			Data:    map[string]any{"hero": a.hero.GetOrDefault()},
		})
		return
	}

	h := models.HomeHeroSettings{
		Badge:       strings.TrimSpace(r.FormValue("badge")),
		Title:       title,
		Subtitle:    strings.TrimSpace(r.FormValue("subtitle")),
		Description: strings.TrimSpace(r.FormValue("description")),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
		PrimaryCTA: models.CTAButton{
			Text:    strings.TrimSpace(r.FormValue("primary_cta_text")),
			URL:     strings.TrimSpace(r.FormValue("primary_cta_url")),
			Enabled: r.FormValue("primary_cta_enabled") == "1",
		},
		SecondaryCTA: models.CTAButton{
			Text:    strings.TrimSpace(r.FormValue("secondary_cta_text")),
			URL:     strings.TrimSpace(r.FormValue("secondary_cta_url")),
			Enabled: r.FormValue("secondary_cta_enabled") == "1",
		},
	}

	if err := a.hero.Update(h); err != nil {
		slog.Error("hero update failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context(), cache.EntityHero, "")
	http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
}

// WhyChooseUsPage renders the why-choose-us section editor.
func (a *Admin) WhyChooseUsPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "why_choose_us", &render.PageData{
		Title:   "Why Choose Us",
		Section: "why-choose-us",
		Data:    map[string]any{"why": a.settings.WhyChooseUs()},
	})
}

// WhyChooseUsSubmit saves the why-choose-us section. Item rows come in as
// parallel item_title/item_description slices; rows with both fields blank
// are dropped.
func (a *Admin) WhyChooseUsSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	why := models.WhyChooseUs{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Subtitle: strings.TrimSpace(r.FormValue("subtitle")),
	}

	titles := r.Form["item_title"]
	descs := r.Form["item_description"]
	for i, t := range titles {
		var d string
		if i < len(descs) {
			d = descs[i]
		}
		t = strings.TrimSpace(t)
		d = strings.TrimSpace(d)
		if t == "" && d == "" {
			continue
		}
		why.Items = append(why.Items, models.WhyChooseUsItem{Title: t, Description: d})
	}

	if err := a.settings.SetWhyChooseUs(why); err != nil {
		slog.Error("why choose us update failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context(), cache.EntitySettings, "")
	http.Redirect(w, r, "/admin/why-choose-us", http.StatusSeeOther)
}

// SettingsPage renders the raw site settings editor.
func (a *Admin) SettingsPage(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settings.All()
	if err != nil {
		slog.Error("list settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "settings", &render.PageData{
		Title:   "Site Settings",
		Section: "settings",
		Data:    map[string]any{"settings": settings},
	})
}

// SettingsSubmit upserts every posted setting key. Values must be valid
// JSON; invalid values are rejected with the offending key named.
func (a *Admin) SettingsSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	existing, err := a.settings.All()
	if err != nil {
		slog.Error("list settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	save := func(key, value string) bool {
		if !json.Valid([]byte(value)) {
			a.renderer.Page(w, r, "settings", &render.PageData{
				Title:   "Site Settings",
				Section: "settings",
				Flashes: []render.Flash{{Type: "error", Message: "Value for " + key + " is not valid JSON."}},
				Data:    map[string]any{"settings": existing},
			})
			return false
		}
		if err := a.settings.Set(key, value); err != nil {
			slog.Error("setting update failed", "key", key, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return false
		}
		return true
	}

	for key := range existing {
		if !r.Form.Has(key) {
			continue
		}
		if !save(key, strings.TrimSpace(r.FormValue(key))) {
			return
		}
	}

	newKey := strings.TrimSpace(r.FormValue("new_key"))
	if newKey != "" {
		if !save(newKey, strings.TrimSpace(r.FormValue("new_value"))) {
			return
		}
	}

	a.invalidate(r.Context(), cache.EntitySettings, "")
	http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
}
