package store

import (
	"testing"

	"github.com/google/uuid"

	"carewell/internal/models"
)

func TestServiceStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewServiceStore(db)

	serviceSlug := "test-service-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanServices(t, db, serviceSlug) })

	created, err := s.Create(&models.Service{
		Slug:             serviceSlug,
		Name:             "Companion Care",
		ShortDescription: "Friendly visits and daily help",
		Category:         "in-home",
		BodyMarkdown:     "## What we do",
		FeaturesRaw:      "- Conversation\n- Meal prep",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}

	found, err := s.FindBySlug(serviceSlug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("expected service, got nil")
	}
	if found.Name != "Companion Care" {
		t.Errorf("name: got %q, want %q", found.Name, "Companion Care")
	}
	if found.Features().Kind != models.FeaturesLegacyMarkdown {
		t.Errorf("features kind: got %q, want markdown", found.Features().Kind)
	}
}

func TestServiceStoreSlugDerivedWhenBlank(t *testing.T) {
	db := testDB(t)
	s := NewServiceStore(db)

	name := "Respite Care " + uuid.NewString()[:8]
	created, err := s.Create(&models.Service{Name: name})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanServices(t, db, created.Slug) })

	if created.Slug == "" {
		t.Fatal("expected derived slug")
	}

	// Explicit slugs survive updates untouched.
	created.Name = "Renamed Service"
	if err := s.Update(created); err != nil {
		t.Fatalf("Update: %v", err)
	}
	found, _ := s.FindByID(created.ID)
	if found.Slug != created.Slug {
		t.Errorf("slug changed on rename: got %q, want %q", found.Slug, created.Slug)
	}
}

func TestServiceStoreStructuredFeaturesRoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewServiceStore(db)

	serviceSlug := "test-tasks-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanServices(t, db, serviceSlug) })

	features := models.ServiceFeatures{
		Kind: models.FeaturesStructuredTasks,
		Tasks: []models.CoreTask{
			{Title: "Bathing assistance", Description: "Safe, dignified support"},
			{Title: "Medication reminders", Description: "On schedule, every time"},
		},
	}
	raw, err := features.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	created, err := s.Create(&models.Service{
		Slug: serviceSlug, Name: "Personal Care", FeaturesRaw: raw,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	decoded := created.Features()
	if decoded.Kind != models.FeaturesStructuredTasks {
		t.Fatalf("kind: got %q, want structured tasks", decoded.Kind)
	}
	if len(decoded.Tasks) != 2 {
		t.Fatalf("tasks: got %d, want 2", len(decoded.Tasks))
	}
	if decoded.Tasks[0].Title != "Bathing assistance" {
		t.Errorf("task title: got %q", decoded.Tasks[0].Title)
	}
}

func TestServiceStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewServiceStore(db)

	created, err := s.Create(&models.Service{Name: "Delete Me " + uuid.NewString()[:8]})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	found, _ := s.FindByID(created.ID)
	if found != nil {
		t.Error("expected nil after delete")
	}
}

func TestCategoryStoreSlugAlwaysRecomputed(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	name := "Home Care " + uuid.NewString()[:8]
	created, err := s.Create(&models.ServiceCategory{Name: name, Slug: "caller-supplied-ignored"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM service_categories WHERE id = $1", created.ID) })

	if created.Slug == "caller-supplied-ignored" {
		t.Error("expected slug derived from name, caller value used instead")
	}

	created.Name = "Specialized Care " + uuid.NewString()[:8]
	if err := s.Update(created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var gotSlug string
	db.QueryRow("SELECT slug FROM service_categories WHERE id = $1", created.ID).Scan(&gotSlug)
	if gotSlug != created.Slug {
		t.Errorf("stored slug: got %q, want recomputed %q", gotSlug, created.Slug)
	}
	if gotSlug == "" {
		t.Error("expected recomputed slug after rename")
	}
}

func TestSpecialtyStoreListActiveFiltersInactive(t *testing.T) {
	db := testDB(t)
	s := NewSpecialtyStore(db)

	active, err := s.Create(&models.ServiceSpecialty{
		Name: "Dementia Care " + uuid.NewString()[:8], IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create active: %v", err)
	}
	inactive, err := s.Create(&models.ServiceSpecialty{
		Name: "Retired Program " + uuid.NewString()[:8], IsActive: false,
	})
	if err != nil {
		t.Fatalf("Create inactive: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM service_specialties WHERE id IN ($1, $2)", active.ID, inactive.ID)
	})

	listed := s.ListActive()
	for _, sp := range listed {
		if sp.ID == inactive.ID {
			t.Error("inactive specialty leaked into public list")
		}
	}
	found := false
	for _, sp := range listed {
		if sp.ID == active.ID {
			found = true
		}
	}
	if !found {
		t.Error("expected active specialty in public list")
	}
}
