package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLBasic(t *testing.T) {
	out, err := ToHTML("# Our Services\n\nWe provide **compassionate** care.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Our Services") {
		t.Errorf("missing heading: %s", out)
	}
	if !strings.Contains(out, "<strong>compassionate</strong>") {
		t.Errorf("missing bold text: %s", out)
	}
}

func TestToHTMLList(t *testing.T) {
	out, err := ToHTML("- Bathing assistance\n- Meal preparation\n- Medication reminders")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Count(out, "<li>") != 3 {
		t.Errorf("expected 3 list items: %s", out)
	}
}

func TestToHTMLStripsScripts(t *testing.T) {
	out, err := ToHTML("Hello <script>alert('xss')</script> world")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Contains(out, "<script") {
		t.Errorf("script tag survived sanitization: %s", out)
	}
}

func TestToHTMLStripsEventHandlers(t *testing.T) {
	out, err := ToHTML(`<img src="x" onerror="alert(1)">`)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Contains(out, "onerror") {
		t.Errorf("event handler survived sanitization: %s", out)
	}
}

func TestToHTMLGFMTable(t *testing.T) {
	out, err := ToHTML("| Service | Hours |\n|---|---|\n| Companion | 24/7 |")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<table") {
		t.Errorf("expected table output: %s", out)
	}
}
