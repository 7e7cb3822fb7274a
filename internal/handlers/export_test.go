// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"carewell/internal/models"
)

func TestCSVQuoteDoublesEmbeddedQuotes(t *testing.T) {
	got := csvQuote(`He said "hi"`)
	want := `"He said ""hi"""`
	if got != want {
		t.Errorf("csvQuote: got %s, want %s", got, want)
	}
}

func TestCSVQuoteAlwaysQuotes(t *testing.T) {
	if got := csvQuote("plain"); got != `"plain"` {
		t.Errorf("csvQuote: got %s, want quoted", got)
	}
	if got := csvQuote(""); got != `""` {
		t.Errorf("csvQuote empty: got %s", got)
	}
}

func TestContactsCSV(t *testing.T) {
	when := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	contacts := []models.ContactSubmission{
		{
			ID:          uuid.MustParse("11111111-2222-3333-4444-555555555555"),
			Name:        "Dana, R.",
			Email:       "dana@example.com",
			Message:     "Mom needs help\nwith daily tasks",
			Status:      models.SubmissionNew,
			SubmittedAt: when,
		},
	}

	got := contactsCSV(contacts)
	lines := strings.SplitN(got, "\n", 2)
	if lines[0] != "id,name,email,phone,preferred_time,service_type,message,status,submitted_at" {
		t.Errorf("header: got %q", lines[0])
	}
	if !strings.Contains(got, `"Dana, R."`) {
		t.Errorf("comma in name must stay inside quotes: %q", got)
	}
	if !strings.Contains(got, "\"Mom needs help\nwith daily tasks\"") {
		t.Errorf("newline in message must stay inside quotes: %q", got)
	}
	if !strings.Contains(got, "2026-03-14T09:30:00Z") {
		t.Errorf("timestamp missing: %q", got)
	}
}

func TestFilterContactsByTab(t *testing.T) {
	contacts := []models.ContactSubmission{
		{Email: "a@example.com", Status: models.SubmissionNew},
		{Email: "b@example.com", Status: models.SubmissionContacted},
		{Email: "c@example.com", Status: models.SubmissionNew},
	}

	if got := filterContactsByTab(contacts, "all"); len(got) != 3 {
		t.Errorf("all tab: got %d contacts, want 3", len(got))
	}

	got := filterContactsByTab(contacts, "contacted")
	if len(got) != 1 || got[0].Email != "b@example.com" {
		t.Errorf("contacted tab: got %v", got)
	}

	if got := filterContactsByTab(contacts, "closed"); len(got) != 0 {
		t.Errorf("closed tab: got %d contacts, want 0", len(got))
	}
}

func TestInquiriesCSVColumnCount(t *testing.T) {
	inquiries := []models.InquirySubmission{
		{
			ID:          uuid.New(),
			FullName:    "Sam Ortiz",
			Email:       "sam@example.com",
			Status:      models.SubmissionContacted,
			SubmittedAt: time.Now(),
		},
	}

	got := inquiriesCSV(inquiries)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	headerCols := strings.Count(lines[0], ",") + 1
	if headerCols != 14 {
		t.Errorf("header columns: got %d, want 14", headerCols)
	}
}
