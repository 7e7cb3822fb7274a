// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"carewell/internal/models"
)

// SubmissionsExport streams the submission list for the requested kind and
// triage tab as a CSV download, filtered exactly like the submissions page.
// Free-text fields are always quoted so commas, quotes, and newlines
// entered by visitors survive the round trip.
func (a *Admin) SubmissionsExport(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind != "inquiry" {
		kind = "contact"
	}
	tab := r.URL.Query().Get("tab")
	if !validTab(tab) {
		tab = "all"
	}

	var body string
	if kind == "contact" {
		contacts, err := a.submissions.ListContacts()
		if err != nil {
			slog.Error("export contact submissions failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		body = contactsCSV(filterContactsByTab(contacts, tab))
	} else {
		inquiries, err := a.submissions.ListInquiries()
		if err != nil {
			slog.Error("export inquiry submissions failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		body = inquiriesCSV(filterInquiriesByTab(inquiries, tab))
	}

	filename := fmt.Sprintf("%s-submissions-%s.csv", kind, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write([]byte(body))
}

// contactsCSV renders contact submissions as CSV, newest first as listed.
func contactsCSV(contacts []models.ContactSubmission) string {
	var b strings.Builder
	b.WriteString("id,name,email,phone,preferred_time,service_type,message,status,submitted_at\n")
	for _, c := range contacts {
		writeCSVRow(&b,
			c.ID.String(),
			csvQuote(c.Name),
			csvQuote(c.Email),
			csvQuote(c.Phone),
			csvQuote(c.PreferredTime),
			csvQuote(c.ServiceType),
			csvQuote(c.Message),
			string(c.Status),
			c.SubmittedAt.Format(time.RFC3339),
		)
	}
	return b.String()
}

// inquiriesCSV renders inquiry submissions as CSV.
func inquiriesCSV(inquiries []models.InquirySubmission) string {
	var b strings.Builder
	b.WriteString("id,full_name,email,phone,address,care_for,start_date,reason,hours_per_week,referrer,can_afford,service_option,status,submitted_at\n")
	for _, q := range inquiries {
		writeCSVRow(&b,
			q.ID.String(),
			csvQuote(q.FullName),
			csvQuote(q.Email),
			csvQuote(q.Phone),
			csvQuote(q.Address),
			csvQuote(q.CareFor),
			csvQuote(q.StartDate),
			csvQuote(q.Reason),
			csvQuote(q.HoursPerWeek),
			csvQuote(q.Referrer),
			csvQuote(q.CanAfford),
			csvQuote(q.ServiceOption),
			string(q.Status),
			q.SubmittedAt.Format(time.RFC3339),
		)
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, fields ...string) {
	b.WriteString(strings.Join(fields, ","))
	b.WriteByte('\n')
}

// csvQuote wraps a free-text field in double quotes, doubling any embedded
// quotes per RFC 4180.
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
