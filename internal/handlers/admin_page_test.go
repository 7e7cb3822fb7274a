// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"carewell/internal/models"
)

// withURLParam injects a chi URL parameter into the request context so
// handlers can be invoked without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestLoginPageRenders(t *testing.T) {
	a := NewAuth(testRenderer(t), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	rec := httptest.NewRecorder()
	a.LoginPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `action="/admin/login"`) {
		t.Error("login form missing")
	}
}

func TestDashboardRendersWithoutDatabase(t *testing.T) {
	a := newAdmin(t, deadDB(t))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	a.Dashboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Dashboard") {
		t.Error("dashboard heading missing")
	}
}

func TestHeroPageShowsDefaultsWithoutDatabase(t *testing.T) {
	a := newAdmin(t, deadDB(t))

	req := httptest.NewRequest(http.MethodGet, "/admin/hero", nil)
	rec := httptest.NewRecorder()
	a.HeroPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Compassionate care, right at home") {
		t.Error("default hero title missing from editor")
	}
}

func TestHeroSubmitRequiresTitle(t *testing.T) {
	a := newAdmin(t, deadDB(t))

	form := url.Values{"title": {"   "}}
	req := httptest.NewRequest(http.MethodPost, "/admin/hero", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.HeroSubmit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (re-rendered form)", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Title is required") {
		t.Error("validation message missing")
	}
}

func TestSubmissionStatusSubmitRejectsUnknownStatus(t *testing.T) {
	a := newAdmin(t, deadDB(t))

	form := url.Values{"status": {"junk"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/submissions/x/status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withURLParam(req, "id", uuid.New().String())
	rec := httptest.NewRecorder()
	a.SubmissionStatusSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestSubmissionStatusSubmitRejectsBadID(t *testing.T) {
	a := newAdmin(t, deadDB(t))

	form := url.Values{"status": {"contacted"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/submissions/x/status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withURLParam(req, "id", "not-a-uuid")
	rec := httptest.NewRecorder()
	a.SubmissionStatusSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestSubmissionsPageTabFilter(t *testing.T) {
	db := testDB(t)
	t.Cleanup(func() {
		db.Exec(`DELETE FROM contact_submissions WHERE email LIKE 'tab-filter-%'`)
	})
	a := newAdmin(t, db)

	for i, status := range []models.SubmissionStatus{models.SubmissionNew, models.SubmissionContacted} {
		c, err := a.submissions.CreateContact(&models.ContactSubmission{
			Name:    "Tab Filter",
			Email:   "tab-filter-" + string(rune('a'+i)) + "@example.com",
			Message: "filter test",
		})
		if err != nil {
			t.Fatalf("create contact: %v", err)
		}
		if status != models.SubmissionNew {
			if err := a.submissions.UpdateContactStatus(c.ID, status); err != nil {
				t.Fatalf("update status: %v", err)
			}
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/submissions?kind=contact&tab=contacted", nil)
	rec := httptest.NewRecorder()
	a.SubmissionsPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "tab-filter-b@example.com") {
		t.Error("contacted submission missing from contacted tab")
	}
	if strings.Contains(body, "tab-filter-a@example.com") {
		t.Error("new submission leaked into contacted tab")
	}
}

func TestSubmissionsExportHonorsTabFilter(t *testing.T) {
	db := testDB(t)
	t.Cleanup(func() {
		db.Exec(`DELETE FROM contact_submissions WHERE email LIKE 'export-tab-%'`)
	})
	a := newAdmin(t, db)

	for i, status := range []models.SubmissionStatus{models.SubmissionNew, models.SubmissionContacted} {
		c, err := a.submissions.CreateContact(&models.ContactSubmission{
			Name:    "Export Tab",
			Email:   "export-tab-" + string(rune('a'+i)) + "@example.com",
			Message: "export filter test",
		})
		if err != nil {
			t.Fatalf("create contact: %v", err)
		}
		if status != models.SubmissionNew {
			if err := a.submissions.UpdateContactStatus(c.ID, status); err != nil {
				t.Fatalf("update status: %v", err)
			}
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/submissions/export?kind=contact&tab=contacted", nil)
	rec := httptest.NewRecorder()
	a.SubmissionsExport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "export-tab-b@example.com") {
		t.Error("contacted submission missing from contacted export")
	}
	if strings.Contains(body, "export-tab-a@example.com") {
		t.Error("new submission leaked into contacted export")
	}
}

func TestMediaUploadWithoutStorageReturns503(t *testing.T) {
	a := newAdmin(t, deadDB(t))

	req := httptest.NewRequest(http.MethodPost, "/admin/media/upload", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	a.MediaUpload(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not configured") {
		t.Error("error payload missing")
	}
}

func TestMediaKeySanitizesFilename(t *testing.T) {
	key := mediaKey("../../etc/pass wd#1.PNG")
	if strings.Contains(key, "..") || strings.Contains(key, "/etc") {
		t.Errorf("path components leaked into key: %q", key)
	}
	if !strings.HasPrefix(key, "media/") {
		t.Errorf("key missing media/ prefix: %q", key)
	}
	if !strings.HasSuffix(key, ".PNG") {
		t.Errorf("extension lost: %q", key)
	}
	if strings.ContainsAny(key, " #") {
		t.Errorf("unsafe characters in key: %q", key)
	}
}
