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

// StaffPage lists staff members in display order.
func (a *Admin) StaffPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "staff", &render.PageData{
		Title:   "Staff",
		Section: "staff",
		Data:    map[string]any{"staff": a.staff.List()},
	})
}

// StaffNewPage renders an empty staff form.
func (a *Admin) StaffNewPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "staff_form", &render.PageData{
		Title:   "New Staff Member",
		Section: "staff",
		Data: map[string]any{
			"member": &models.StaffMember{},
			"action": "/admin/staff",
		},
	})
}

// StaffEditPage renders the edit form for an existing staff member.
func (a *Admin) StaffEditPage(w http.ResponseWriter, r *http.Request) {
	member := a.findStaff(w, r)
	if member == nil {
		return
	}

	a.renderer.Page(w, r, "staff_form", &render.PageData{
		Title:   "Edit Staff Member",
		Section: "staff",
		Data: map[string]any{
			"member": member,
			"action": "/admin/staff/" + member.ID.String(),
		},
	})
}

// StaffCreate inserts a new staff member.
func (a *Admin) StaffCreate(w http.ResponseWriter, r *http.Request) {
	member := &models.StaffMember{}
	fillStaffForm(member, r)

	if member.Name == "" {
		a.staffFormError(w, r, member, "/admin/staff", "Name is required.")
		return
	}

	if _, err := a.staff.Create(member); err != nil {
		slog.Error("create staff failed", "error", err)
		a.staffFormError(w, r, member, "/admin/staff", "Could not save the staff member.")
		return
	}

	a.invalidate(r.Context(), cache.EntityStaff, "")
	http.Redirect(w, r, "/admin/staff", http.StatusSeeOther)
}

// StaffUpdate saves changes to an existing staff member.
func (a *Admin) StaffUpdate(w http.ResponseWriter, r *http.Request) {
	member := a.findStaff(w, r)
	if member == nil {
		return
	}

	fillStaffForm(member, r)
	if member.Name == "" {
		a.staffFormError(w, r, member, "/admin/staff/"+member.ID.String(), "Name is required.")
		return
	}

	if err := a.staff.Update(member); err != nil {
		slog.Error("update staff failed", "id", member.ID, "error", err)
		a.staffFormError(w, r, member, "/admin/staff/"+member.ID.String(), "Could not save the staff member.")
		return
	}

	a.invalidate(r.Context(), cache.EntityStaff, "")
	http.Redirect(w, r, "/admin/staff", http.StatusSeeOther)
}

// StaffDelete removes a staff member and re-renders the list.
func (a *Admin) StaffDelete(w http.ResponseWriter, r *http.Request) {
	member := a.findStaff(w, r)
	if member == nil {
		return
	}

	if err := a.staff.Delete(member.ID); err != nil {
		slog.Error("delete staff failed", "id", member.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context(), cache.EntityStaff, "")
	a.StaffPage(w, r)
}

func fillStaffForm(member *models.StaffMember, r *http.Request) {
	member.Name = strings.TrimSpace(r.FormValue("name"))
	member.Role = strings.TrimSpace(r.FormValue("role"))
	member.PhotoURL = strings.TrimSpace(r.FormValue("photo_url"))
	member.Bio = strings.TrimSpace(r.FormValue("bio"))
	member.SortOrder, _ = strconv.Atoi(r.FormValue("sort_order"))
}

func (a *Admin) staffFormError(w http.ResponseWriter, r *http.Request, member *models.StaffMember, action, msg string) {
	a.renderer.Page(w, r, "staff_form", &render.PageData{
		Title:   "Staff Member",
		Section: "staff",
		Flashes: []render.Flash{{Type: "error", Message: msg}},
		Data: map[string]any{
			"member": member,
			"action": action,
		},
	})
}

func (a *Admin) findStaff(w http.ResponseWriter, r *http.Request) *models.StaffMember {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil
	}

	member, err := a.staff.FindByID(id)
	if err != nil {
		slog.Error("find staff failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}
	if member == nil {
		http.NotFound(w, r)
		return nil
	}
	return member
}

// TestimonialsPage lists all testimonials.
func (a *Admin) TestimonialsPage(w http.ResponseWriter, r *http.Request) {
	testimonials, err := a.testimonials.List()
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "testimonials", &render.PageData{
		Title:   "Testimonials",
		Section: "testimonials",
		Data:    map[string]any{"testimonials": testimonials},
	})
}

// TestimonialNewPage renders an empty testimonial form. New testimonials
// default to published.
func (a *Admin) TestimonialNewPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "testimonial_form", &render.PageData{
		Title:   "New Testimonial",
		Section: "testimonials",
		Data: map[string]any{
			"testimonial": &models.Testimonial{Published: true},
			"action":      "/admin/testimonials",
		},
	})
}

// TestimonialEditPage renders the edit form for an existing testimonial.
func (a *Admin) TestimonialEditPage(w http.ResponseWriter, r *http.Request) {
	tm := a.findTestimonial(w, r)
	if tm == nil {
		return
	}

	a.renderer.Page(w, r, "testimonial_form", &render.PageData{
		Title:   "Edit Testimonial",
		Section: "testimonials",
		Data: map[string]any{
			"testimonial": tm,
			"action":      "/admin/testimonials/" + tm.ID.String(),
		},
	})
}

// TestimonialCreate inserts a new testimonial.
func (a *Admin) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	tm := &models.Testimonial{}
	fillTestimonialForm(tm, r)

	if tm.Name == "" || tm.Quote == "" {
		a.testimonialFormError(w, r, tm, "/admin/testimonials", "Name and quote are required.")
		return
	}

	if _, err := a.testimonials.Create(tm); err != nil {
		slog.Error("create testimonial failed", "error", err)
		a.testimonialFormError(w, r, tm, "/admin/testimonials", "Could not save the testimonial.")
		return
	}

	a.invalidate(r.Context(), cache.EntityTestimonial, "")
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

// TestimonialUpdate saves changes to an existing testimonial.
func (a *Admin) TestimonialUpdate(w http.ResponseWriter, r *http.Request) {
	tm := a.findTestimonial(w, r)
	if tm == nil {
		return
	}

	fillTestimonialForm(tm, r)
	if tm.Name == "" || tm.Quote == "" {
		a.testimonialFormError(w, r, tm, "/admin/testimonials/"+tm.ID.String(), "Name and quote are required.")
		return
	}

	if err := a.testimonials.Update(tm); err != nil {
		slog.Error("update testimonial failed", "id", tm.ID, "error", err)
		a.testimonialFormError(w, r, tm, "/admin/testimonials/"+tm.ID.String(), "Could not save the testimonial.")
		return
	}

	a.invalidate(r.Context(), cache.EntityTestimonial, "")
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

// TestimonialDelete removes a testimonial and re-renders the list.
func (a *Admin) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	tm := a.findTestimonial(w, r)
	if tm == nil {
		return
	}

	if err := a.testimonials.Delete(tm.ID); err != nil {
		slog.Error("delete testimonial failed", "id", tm.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context(), cache.EntityTestimonial, "")
	a.TestimonialsPage(w, r)
}

func fillTestimonialForm(tm *models.Testimonial, r *http.Request) {
	tm.Name = strings.TrimSpace(r.FormValue("name"))
	tm.Location = strings.TrimSpace(r.FormValue("location"))
	tm.AvatarURL = strings.TrimSpace(r.FormValue("avatar_url"))
	tm.Quote = strings.TrimSpace(r.FormValue("quote"))
	tm.Attribution = strings.TrimSpace(r.FormValue("attribution"))
	tm.Published = r.FormValue("published") == "1"
}

func (a *Admin) testimonialFormError(w http.ResponseWriter, r *http.Request, tm *models.Testimonial, action, msg string) {
	a.renderer.Page(w, r, "testimonial_form", &render.PageData{
		Title:   "Testimonial",
		Section: "testimonials",
		Flashes: []render.Flash{{Type: "error", Message: msg}},
		Data: map[string]any{
			"testimonial": tm,
			"action":      action,
		},
	})
}

func (a *Admin) findTestimonial(w http.ResponseWriter, r *http.Request) *models.Testimonial {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil
	}

	tm, err := a.testimonials.FindByID(id)
	if err != nil {
		slog.Error("find testimonial failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}
	if tm == nil {
		http.NotFound(w, r)
		return nil
	}
	return tm
}
