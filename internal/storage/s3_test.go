package storage

import "testing"

func testClient() *Client {
	return &Client{
		bucket:    "carewell-media",
		endpoint:  "https://s3.example.com",
		publicURL: "https://cdn.carewell.example",
	}
}

func TestExtractKey(t *testing.T) {
	c := testClient()

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{"cdn url", "https://cdn.carewell.example/uploads/2026/photo.jpg", "uploads/2026/photo.jpg", true},
		{"path-style url", "https://s3.example.com/carewell-media/uploads/photo.jpg", "uploads/photo.jpg", true},
		{"cdn url with query", "https://cdn.carewell.example/uploads/photo.jpg?w=400", "uploads/photo.jpg", true},
		{"external url", "https://other.example.com/photo.jpg", "", false},
		{"wrong bucket", "https://s3.example.com/other-bucket/photo.jpg", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := c.ExtractKey(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if key != tt.wantKey {
				t.Errorf("key: got %q, want %q", key, tt.wantKey)
			}
		})
	}
}

func TestFileURLPrefersPublicURL(t *testing.T) {
	c := testClient()
	if got := c.FileURL("uploads/a.png"); got != "https://cdn.carewell.example/uploads/a.png" {
		t.Errorf("got %q", got)
	}

	c.publicURL = ""
	if got := c.FileURL("uploads/a.png"); got != "https://s3.example.com/carewell-media/uploads/a.png" {
		t.Errorf("got %q", got)
	}
}

func TestTransformURLOwnStorage(t *testing.T) {
	c := testClient()

	got := c.TransformURL("https://cdn.carewell.example/uploads/hero.jpg", TransformOptions{
		Width: 1200, Height: 600, Quality: 80, Cover: true,
	})
	want := "https://cdn.carewell.example/uploads/hero.jpg?fit=cover&h=600&q=80&w=1200"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTransformURLExternalUnchanged(t *testing.T) {
	c := testClient()

	external := "https://images.example.org/stock/photo.jpg"
	if got := c.TransformURL(external, TransformOptions{Width: 400}); got != external {
		t.Errorf("external URL was modified: %q", got)
	}
}

func TestTransformURLNoOptions(t *testing.T) {
	c := testClient()

	got := c.TransformURL("https://cdn.carewell.example/uploads/hero.jpg?w=999", TransformOptions{})
	// Existing params are stripped; no new ones appended.
	if got != "https://cdn.carewell.example/uploads/hero.jpg" {
		t.Errorf("got %q", got)
	}
}

func TestNewReturnsNilWithoutCredentials(t *testing.T) {
	c, err := New("", "eu-central", "", "", "bucket", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("expected nil client when credentials are empty")
	}
}
