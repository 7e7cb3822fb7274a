// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestHomepageRendersWithoutDatabase(t *testing.T) {
	p := newPublic(t, deadDB(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	p.Homepage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	// The hero and why-choose-us sections fall back to defaults.
	if !strings.Contains(body, "Compassionate care, right at home") {
		t.Error("default hero title missing from homepage")
	}
	if !strings.Contains(body, "Why Families Choose Us") {
		t.Error("default why-choose-us section missing from homepage")
	}
}

func TestServicesPageRendersWithoutDatabase(t *testing.T) {
	p := newPublic(t, deadDB(t))

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	p.ServicesPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Our Services") {
		t.Error("services heading missing")
	}
}

func TestContactPageShowsForm(t *testing.T) {
	p := newPublic(t, deadDB(t))

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := httptest.NewRecorder()
	p.ContactPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `action="/contact"`) {
		t.Error("contact form missing")
	}
}

func TestContactPageShowsSuccessState(t *testing.T) {
	p := newPublic(t, deadDB(t))

	req := httptest.NewRequest(http.MethodGet, "/contact?sent=1", nil)
	rec := httptest.NewRecorder()
	p.ContactPage(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, `action="/contact"`) {
		t.Error("form should be hidden after submission")
	}
	if !strings.Contains(body, "Thank you") {
		t.Error("success message missing")
	}
}

func TestContactSubmitRejectsInvalidInput(t *testing.T) {
	p := newPublic(t, deadDB(t))

	form := url.Values{
		"name":    {"Dana"},
		"email":   {"not-an-email"},
		"message": {"Hello"},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	p.ContactSubmit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (re-rendered form)", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "valid email") {
		t.Errorf("validation message missing: %q", body[:200])
	}
	// The visitor's input must survive the round trip.
	if !strings.Contains(body, `value="Dana"`) {
		t.Error("submitted name not re-rendered")
	}
}

func TestInquirySubmitRequiresPhone(t *testing.T) {
	p := newPublic(t, deadDB(t))

	form := url.Values{
		"full_name": {"Sam Ortiz"},
		"email":     {"sam@example.com"},
	}
	req := httptest.NewRequest(http.MethodPost, "/inquiry", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	p.InquirySubmit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "phone number") {
		t.Error("phone validation message missing")
	}
}

func TestContactSubmitStoreFailureRendersFormError(t *testing.T) {
	p := newPublic(t, deadDB(t))

	form := url.Values{
		"name":    {"Dana Reyes"},
		"email":   {"dana@example.com"},
		"message": {"Please call me back."},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	p.ContactSubmit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (re-rendered form)", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Something went wrong") {
		t.Error("store failure message missing")
	}
	if !strings.Contains(body, `value="Dana Reyes"`) {
		t.Error("submitted name not re-rendered after store failure")
	}
}

func TestInquirySubmitStoreFailureRendersFormError(t *testing.T) {
	p := newPublic(t, deadDB(t))

	form := url.Values{
		"full_name": {"Sam Ortiz"},
		"email":     {"sam@example.com"},
		"phone":     {"555-0100"},
	}
	req := httptest.NewRequest(http.MethodPost, "/inquiry", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	p.InquirySubmit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (re-rendered form)", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Error("store failure message missing")
	}
}

func TestContactSubmitStoresAndRedirects(t *testing.T) {
	db := testDB(t)
	t.Cleanup(func() {
		db.Exec(`DELETE FROM contact_submissions WHERE email = $1`, "handler-test@example.com")
	})
	p := newPublic(t, db)

	form := url.Values{
		"name":    {"Handler Test"},
		"email":   {"handler-test@example.com"},
		"message": {"Testing the contact flow."},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	p.ContactSubmit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/contact?sent=1" {
		t.Errorf("redirect: got %q", loc)
	}

	var status string
	err := db.QueryRow(`SELECT status FROM contact_submissions WHERE email = $1`, "handler-test@example.com").Scan(&status)
	if err != nil {
		t.Fatalf("stored submission not found: %v", err)
	}
	if status != "new" {
		t.Errorf("status: got %q, want new", status)
	}
}

func TestHealthEndpoint(t *testing.T) {
	p := newPublic(t, deadDB(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	p.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("body: got %q", got)
	}
}
