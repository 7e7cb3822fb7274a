// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"carewell/internal/cache"
	"carewell/internal/markdown"
	"carewell/internal/models"
	"carewell/internal/render"
	"carewell/internal/store"
)

// homePostCount is how many recent posts the homepage shows.
const homePostCount = 3

// homeServiceCount is how many services the homepage previews.
const homeServiceCount = 6

// Public groups handlers for the visitor-facing site. Read pages go
// through the Valkey page cache: on a hit the stored HTML is written
// directly, on a miss the rendered page is stored before responding.
type Public struct {
	renderer     *render.Renderer
	services     *store.ServiceStore
	posts        *store.BlogPostStore
	categories   *store.CategoryStore
	specialties  *store.SpecialtyStore
	spHeader     *store.SpecialtiesHeaderStore
	hero         *store.HeroStore
	settings     *store.SiteSettingStore
	staff        *store.StaffStore
	testimonials *store.TestimonialStore
	submissions  *store.SubmissionStore
	pageCache    *cache.PageCache
}

// PublicDeps bundles the dependencies for the public handler group.
type PublicDeps struct {
	Renderer     *render.Renderer
	Services     *store.ServiceStore
	Posts        *store.BlogPostStore
	Categories   *store.CategoryStore
	Specialties  *store.SpecialtyStore
	SpHeader     *store.SpecialtiesHeaderStore
	Hero         *store.HeroStore
	Settings     *store.SiteSettingStore
	Staff        *store.StaffStore
	Testimonials *store.TestimonialStore
	Submissions  *store.SubmissionStore
	PageCache    *cache.PageCache
}

// NewPublic creates a new Public handler group. PageCache may be nil.
func NewPublic(d PublicDeps) *Public {
	return &Public{
		renderer:     d.Renderer,
		services:     d.Services,
		posts:        d.Posts,
		categories:   d.Categories,
		specialties:  d.Specialties,
		spHeader:     d.SpHeader,
		hero:         d.Hero,
		settings:     d.Settings,
		staff:        d.Staff,
		testimonials: d.Testimonials,
		submissions:  d.Submissions,
		pageCache:    d.PageCache,
	}
}

// Homepage renders the landing page.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	services := p.services.List()
	if len(services) > homeServiceCount {
		services = services[:homeServiceCount]
	}

	posts := p.posts.ListPublished()
	if len(posts) > homePostCount {
		posts = posts[:homePostCount]
	}

	data := p.baseData()
	data["hero"] = p.hero.GetOrDefault()
	data["why"] = p.settings.WhyChooseUs()
	data["services"] = services
	data["specialties"] = p.specialties.ListActive()
	data["specialtiesHeader"] = p.spHeader.GetOrDefault()
	data["testimonials"] = p.testimonials.ListPublished()
	data["posts"] = posts

	p.renderCached(w, r, "home", &render.PageData{
		Title: p.settingString("site_name", "CareWell Home Care"),
		Data:  data,
	})
}

// AboutPage renders the about page with staff and testimonials.
func (p *Public) AboutPage(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	data := p.baseData()
	data["staff"] = p.staff.List()
	data["testimonials"] = p.testimonials.ListPublished()
	data["aboutIntro"] = p.settingString("about_intro",
		"We are a family-owned home care agency dedicated to helping seniors live safely and independently at home.")

	p.renderCached(w, r, "about", &render.PageData{
		Title: "About Us — " + p.settingString("site_name", "CareWell Home Care"),
		Data:  data,
	})
}

// ServicesPage renders the full services grid grouped by category, with
// the specialties section below.
func (p *Public) ServicesPage(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	categories := p.categories.List()
	services := p.services.List()

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.Slug] = true
	}

	byCategory := make(map[string][]models.Service)
	var uncategorized []models.Service
	for _, svc := range services {
		if known[svc.Category] {
			byCategory[svc.Category] = append(byCategory[svc.Category], svc)
		} else {
			uncategorized = append(uncategorized, svc)
		}
	}

	data := p.baseData()
	data["categories"] = categories
	data["servicesByCategory"] = byCategory
	data["uncategorized"] = uncategorized
	data["specialties"] = p.specialties.ListActive()
	data["specialtiesHeader"] = p.spHeader.GetOrDefault()

	p.renderCached(w, r, "services", &render.PageData{
		Title: "Services — " + p.settingString("site_name", "CareWell Home Care"),
		Data:  data,
	})
}

// ServicePage renders a single service detail page.
func (p *Public) ServicePage(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	svc, err := p.services.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		slog.Error("find service by slug failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if svc == nil {
		http.NotFound(w, r)
		return
	}

	bodyHTML, err := markdown.ToHTML(svc.BodyMarkdown)
	if err != nil {
		slog.Error("service body render failed", "slug", svc.Slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := p.baseData()
	data["service"] = svc
	data["bodyHTML"] = bodyHTML
	data["metaDescription"] = svc.ShortDescription

	features := svc.Features()
	data["features"] = features
	if features.Kind == models.FeaturesLegacyMarkdown && features.Markdown != "" {
		if html, err := markdown.ToHTML(features.Markdown); err == nil {
			data["featuresHTML"] = html
		}
	}
	if svc.AudienceMarkdown != "" {
		if html, err := markdown.ToHTML(svc.AudienceMarkdown); err == nil {
			data["audienceHTML"] = html
		}
	}

	p.renderCached(w, r, "service", &render.PageData{
		Title: svc.Name + " — " + p.settingString("site_name", "CareWell Home Care"),
		Data:  data,
	})
}

// BlogPage renders the published post listing.
func (p *Public) BlogPage(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	data := p.baseData()
	data["posts"] = p.posts.ListPublished()

	p.renderCached(w, r, "blog", &render.PageData{
		Title: "Blog — " + p.settingString("site_name", "CareWell Home Care"),
		Data:  data,
	})
}

// PostPage renders a single published post. Drafts 404.
func (p *Public) PostPage(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	post, err := p.posts.FindPublishedBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		slog.Error("find post by slug failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	bodyHTML, err := markdown.ToHTML(post.BodyMarkdown)
	if err != nil {
		slog.Error("post body render failed", "slug", post.Slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	title := post.SEOTitle
	if title == "" {
		title = post.Title
	}
	metaDesc := post.SEODescription
	if metaDesc == "" {
		metaDesc = post.Excerpt
	}

	data := p.baseData()
	data["post"] = post
	data["bodyHTML"] = bodyHTML
	data["metaDescription"] = metaDesc

	p.renderCached(w, r, "post", &render.PageData{
		Title: title + " — " + p.settingString("site_name", "CareWell Home Care"),
		Data:  data,
	})
}

// ContactPage renders the contact form. The ?sent=1 redirect target shows
// the success state instead of the form.
func (p *Public) ContactPage(w http.ResponseWriter, r *http.Request) {
	data := p.baseData()
	data["form"] = &models.ContactSubmission{}
	data["services"] = p.services.List()
	data["submitted"] = r.URL.Query().Get("sent") == "1"

	p.renderDirect(w, "contact", &render.PageData{
		Title: "Contact — " + p.settingString("site_name", "CareWell Home Care"),
		Data:  data,
	})
}

// ContactSubmit stores a contact form submission. Visitor input cannot set
// the triage status; every submission starts as new.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	c := &models.ContactSubmission{
		Name:          r.FormValue("name"),
		Email:         r.FormValue("email"),
		Phone:         r.FormValue("phone"),
		PreferredTime: r.FormValue("preferred_time"),
		ServiceType:   r.FormValue("service_type"),
		Message:       r.FormValue("message"),
	}

	if msg := validateContact(c); msg != "" {
		p.contactFormError(w, c, msg)
		return
	}

	if _, err := p.submissions.CreateContact(c); err != nil {
		slog.Error("contact submission failed", "error", err)
		p.contactFormError(w, c, "Something went wrong saving your message. Please try again.")
		return
	}

	http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
}

// contactFormError re-renders the contact form with an inline error and the
// visitor's input intact.
func (p *Public) contactFormError(w http.ResponseWriter, c *models.ContactSubmission, msg string) {
	data := p.baseData()
	data["form"] = c
	data["services"] = p.services.List()
	data["formError"] = msg
	p.renderDirect(w, "contact", &render.PageData{
		Title: "Contact — " + p.settingString("site_name", "CareWell Home Care"),
		Data:  data,
	})
}

// InquiryPage renders the care inquiry form.
func (p *Public) InquiryPage(w http.ResponseWriter, r *http.Request) {
	data := p.baseData()
	data["form"] = &models.InquirySubmission{}
	data["services"] = p.services.List()
	data["submitted"] = r.URL.Query().Get("sent") == "1"

	p.renderDirect(w, "inquiry", &render.PageData{
		Title: "Request Care — " + p.settingString("site_name", "CareWell Home Care"),
		Data:  data,
	})
}

// InquirySubmit stores a care inquiry.
func (p *Public) InquirySubmit(w http.ResponseWriter, r *http.Request) {
	q := &models.InquirySubmission{
		FullName:      r.FormValue("full_name"),
		Email:         r.FormValue("email"),
		Phone:         r.FormValue("phone"),
		Address:       r.FormValue("address"),
		CareFor:       r.FormValue("care_for"),
		StartDate:     r.FormValue("start_date"),
		Reason:        r.FormValue("reason"),
		HoursPerWeek:  r.FormValue("hours_per_week"),
		Referrer:      r.FormValue("referrer"),
		CanAfford:     r.FormValue("can_afford"),
		ServiceOption: r.FormValue("service_option"),
	}

	if msg := validateInquiry(q); msg != "" {
		p.inquiryFormError(w, q, msg)
		return
	}

	if _, err := p.submissions.CreateInquiry(q); err != nil {
		slog.Error("inquiry submission failed", "error", err)
		p.inquiryFormError(w, q, "Something went wrong saving your request. Please try again.")
		return
	}

	http.Redirect(w, r, "/inquiry?sent=1", http.StatusSeeOther)
}

// inquiryFormError re-renders the inquiry form with an inline error and the
// visitor's input intact.
func (p *Public) inquiryFormError(w http.ResponseWriter, q *models.InquirySubmission, msg string) {
	data := p.baseData()
	data["form"] = q
	data["services"] = p.services.List()
	data["formError"] = msg
	p.renderDirect(w, "inquiry", &render.PageData{
		Title: "Request Care — " + p.settingString("site_name", "CareWell Home Care"),
		Data:  data,
	})
}

// Health is a liveness endpoint for load balancers.
func (p *Public) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// baseData returns the template data every public page needs for the
// shared navigation and footer.
func (p *Public) baseData() map[string]any {
	return map[string]any{
		"siteName":      p.settingString("site_name", "CareWell Home Care"),
		"footerTagline": p.settingString("footer_tagline", "Compassionate in-home care for the people you love."),
		"contactPhone":  p.settingString("contact_phone", "(555) 010-2200"),
		"contactEmail":  p.settingString("contact_email", "hello@carewell.example"),
		"year":          time.Now().Year(),
	}
}

// settingString reads a site setting whose JSON value is a string,
// returning the fallback on any failure.
func (p *Public) settingString(key, fallback string) string {
	raw, err := p.settings.Get(key, "")
	if err != nil || raw == "" {
		return fallback
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return fallback
	}
	return s
}

// serveCached writes the cached HTML for this path if present.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request) bool {
	if p.pageCache == nil {
		return false
	}
	html, ok := p.pageCache.Get(r.Context(), r.URL.Path)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
	return true
}

// renderCached renders a page, stores it in the page cache, and writes it.
func (p *Public) renderCached(w http.ResponseWriter, r *http.Request, name string, data *render.PageData) {
	html, err := p.renderer.Public(name, data)
	if err != nil {
		slog.Error("public render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if p.pageCache != nil {
		p.pageCache.Set(r.Context(), r.URL.Path, html)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// renderDirect renders a page without touching the cache (form pages).
func (p *Public) renderDirect(w http.ResponseWriter, name string, data *render.PageData) {
	html, err := p.renderer.Public(name, data)
	if err != nil {
		slog.Error("public render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
