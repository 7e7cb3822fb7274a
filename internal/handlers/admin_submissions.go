// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"carewell/internal/models"
	"carewell/internal/render"
)

// submissionTabs is the triage tab order shown in the admin panel.
var submissionTabs = []string{"all", "new", "contacted", "closed"}

// SubmissionsPage lists form submissions with kind (contact/inquiry) and
// triage tab filters. Tab counts always reflect the full set for the
// selected kind, not the filtered view.
func (a *Admin) SubmissionsPage(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind != "inquiry" {
		kind = "contact"
	}

	tab := r.URL.Query().Get("tab")
	if !validTab(tab) {
		tab = "all"
	}

	data := map[string]any{
		"kind": kind,
		"tab":  tab,
		"tabs": submissionTabs,
	}

	if kind == "contact" {
		contacts, err := a.submissions.ListContacts()
		if err != nil {
			slog.Error("list contact submissions failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		counts := map[string]int{"all": len(contacts)}
		for _, c := range contacts {
			counts[string(c.Status)]++
		}
		data["contacts"] = filterContactsByTab(contacts, tab)
		data["counts"] = counts
	} else {
		inquiries, err := a.submissions.ListInquiries()
		if err != nil {
			slog.Error("list inquiry submissions failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		counts := map[string]int{"all": len(inquiries)}
		for _, q := range inquiries {
			counts[string(q.Status)]++
		}
		data["inquiries"] = filterInquiriesByTab(inquiries, tab)
		data["counts"] = counts
	}

	a.renderer.Page(w, r, "submissions", &render.PageData{
		Title:   "Submissions",
		Section: "submissions",
		Data:    data,
	})
}

// SubmissionStatusSubmit moves a submission to a new triage state.
func (a *Admin) SubmissionStatusSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	status := models.SubmissionStatus(r.FormValue("status"))
	if !models.ValidSubmissionStatus(status) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "inquiry" {
		err = a.submissions.UpdateInquiryStatus(id, status)
	} else {
		kind = "contact"
		err = a.submissions.UpdateContactStatus(id, status)
	}
	if err != nil {
		slog.Error("submission status update failed", "id", id, "kind", kind, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/submissions?kind="+kind, http.StatusSeeOther)
}

// SubmissionDelete permanently removes a submission.
func (a *Admin) SubmissionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "inquiry" {
		err = a.submissions.DeleteInquiry(id)
	} else {
		kind = "contact"
		err = a.submissions.DeleteContact(id)
	}
	if err != nil {
		slog.Error("submission delete failed", "id", id, "kind", kind, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.SubmissionsPage(w, r)
}

// filterContactsByTab keeps the contacts matching the triage tab; "all"
// passes the list through unchanged.
func filterContactsByTab(contacts []models.ContactSubmission, tab string) []models.ContactSubmission {
	if tab == "all" {
		return contacts
	}
	filtered := contacts[:0:0]
	for _, c := range contacts {
		if string(c.Status) == tab {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// filterInquiriesByTab keeps the inquiries matching the triage tab.
func filterInquiriesByTab(inquiries []models.InquirySubmission, tab string) []models.InquirySubmission {
	if tab == "all" {
		return inquiries
	}
	filtered := inquiries[:0:0]
	for _, q := range inquiries {
		if string(q.Status) == tab {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

func validTab(tab string) bool {
	for _, t := range submissionTabs {
		if t == tab {
			return true
		}
	}
	return false
}
