package cache

import (
	"slices"
	"testing"
)

func TestPathsForService(t *testing.T) {
	paths := PathsFor(EntityService, "companion-care")
	for _, want := range []string{"/", "/services", "/services/companion-care"} {
		if !slices.Contains(paths, want) {
			t.Errorf("missing %q in %v", want, paths)
		}
	}
}

func TestPathsForServiceNoSlug(t *testing.T) {
	paths := PathsFor(EntityService, "")
	if slices.Contains(paths, "/services/") {
		t.Errorf("empty slug produced detail path: %v", paths)
	}
}

func TestPathsForBlogPost(t *testing.T) {
	paths := PathsFor(EntityBlogPost, "fall-prevention")
	for _, want := range []string{"/", "/blog", "/blog/fall-prevention"} {
		if !slices.Contains(paths, want) {
			t.Errorf("missing %q in %v", want, paths)
		}
	}
}

func TestPathsForStaffOnlyAbout(t *testing.T) {
	paths := PathsFor(EntityStaff, "")
	if !slices.Contains(paths, "/about") {
		t.Errorf("missing /about in %v", paths)
	}
	if slices.Contains(paths, "/") {
		t.Errorf("staff edits should not invalidate the homepage: %v", paths)
	}
}

func TestPathsForHeroTouchesHome(t *testing.T) {
	for _, e := range []Entity{EntityHero, EntityTestimonial, EntitySettings} {
		if !slices.Contains(PathsFor(e, ""), "/") {
			t.Errorf("%s edits should invalidate the homepage", e)
		}
	}
}

func TestPathsForUnknownEntity(t *testing.T) {
	if paths := PathsFor(Entity("bogus"), ""); paths != nil {
		t.Errorf("expected nil for unknown entity, got %v", paths)
	}
}
