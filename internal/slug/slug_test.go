package slug

import "testing"

// TestMake exercises the slug generator with typical service and category
// names, special characters, and boundary conditions.
func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple two words",
			input: "Night Care",
			want:  "night-care",
		},
		{
			name:  "trailing punctuation",
			input: "Elderly Care!!",
			want:  "elderly-care",
		},
		{
			name:  "leading and trailing junk",
			input: "  --Multi   Space--  ",
			want:  "multi-space",
		},
		{
			name:  "already a slug",
			input: "respite-care",
			want:  "respite-care",
		},
		{
			name:  "digits and slash",
			input: "24/7 Live-In Support",
			want:  "24-7-live-in-support",
		},
		{
			name:  "ampersand",
			input: "Companionship & Errands",
			want:  "companionship-errands",
		},
		{
			name:  "apostrophe",
			input: "Alzheimer's Care",
			want:  "alzheimer-s-care",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "!!!",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestMakeIdempotent verifies that slugging a slug is a no-op, so the slug
// preview in the admin forms always matches what the server stores.
func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"Night Care Plus",
		"  --Multi   Space--  ",
		"Personal Care (Level 2)",
		"dementia-support",
	}
	for _, in := range inputs {
		once := Make(in)
		twice := Make(once)
		if once != twice {
			t.Errorf("Make not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
