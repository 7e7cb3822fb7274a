package store

import (
	"testing"

	"carewell/internal/defaults"
	"carewell/internal/models"
)

func TestHeroStoreUpdateNeverDuplicates(t *testing.T) {
	db := testDB(t)
	s := NewHeroStore(db)

	hero := models.HomeHeroSettings{
		Badge:       "Trusted Since 2009",
		Title:       "Compassionate Care at Home",
		Subtitle:    "For your loved ones",
		Description: "Round-the-clock support",
		PrimaryCTA:  models.CTAButton{Text: "Get Started", URL: "/contact", Enabled: true},
	}
	if err := s.Update(hero); err != nil {
		t.Fatalf("Update (first): %v", err)
	}

	hero.Title = "Updated Title"
	if err := s.Update(hero); err != nil {
		t.Fatalf("Update (second): %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM home_hero_settings").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 hero row, got %d", count)
	}

	got, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Updated Title" {
		t.Errorf("title: got %q, want %q", got.Title, "Updated Title")
	}
	if !got.PrimaryCTA.Enabled {
		t.Error("expected primary CTA enabled")
	}
}

func TestSpecialtiesHeaderStoreUpdateNeverDuplicates(t *testing.T) {
	db := testDB(t)
	s := NewSpecialtiesHeaderStore(db)

	if err := s.Update(models.SpecialtiesHeader{Title: "Our Specialties", Description: "Condition-specific care"}); err != nil {
		t.Fatalf("Update (first): %v", err)
	}
	if err := s.Update(models.SpecialtiesHeader{Title: "Care Specialties", Description: "What we focus on"}); err != nil {
		t.Fatalf("Update (second): %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM specialties_header").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 header row, got %d", count)
	}
}

// The OrDefault reads must survive a dead database — the public site renders
// fallback copy instead of erroring. These run without PostgreSQL.
func TestHeroStoreGetOrDefaultDeadDB(t *testing.T) {
	s := NewHeroStore(deadDB(t))

	got := s.GetOrDefault()
	want := defaults.HomeHero()
	if got.Title != want.Title {
		t.Errorf("title: got %q, want default %q", got.Title, want.Title)
	}
	if got.Title == "" {
		t.Error("default hero title must not be empty")
	}
}

func TestSpecialtiesHeaderGetOrDefaultDeadDB(t *testing.T) {
	s := NewSpecialtiesHeaderStore(deadDB(t))

	got := s.GetOrDefault()
	if got.Title == "" {
		t.Error("default specialties header title must not be empty")
	}
}

func TestWhyChooseUsDeadDBFallsBack(t *testing.T) {
	s := NewSiteSettingStore(deadDB(t))

	got := s.WhyChooseUs()
	want := defaults.WhyChooseUs()
	if got.Title != want.Title {
		t.Errorf("title: got %q, want default %q", got.Title, want.Title)
	}
	if len(got.Items) == 0 {
		t.Error("default why-choose-us must have items")
	}
}
