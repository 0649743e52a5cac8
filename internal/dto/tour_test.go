package dto

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Patagonia Trek", "patagonia-trek"},
		{"mixed case and punctuation", "7-Day Inca Trail: Cusco & Machu Picchu!", "7-day-inca-trail-cusco-machu-picchu"},
		{"leading and trailing junk", "  --Sunset Cruise--  ", "sunset-cruise"},
		{"collapses runs", "A   B---C", "a-b-c"},
		{"already a slug", "northern-lights", "northern-lights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUpdateTourRequest_ToPatch(t *testing.T) {
	title := "New Title"
	status := "published"
	req := &UpdateTourRequest{Title: &title, Status: &status}

	patch := req.ToPatch()
	if patch.Title == nil || *patch.Title != "New Title" {
		t.Errorf("patch.Title = %v, want New Title", patch.Title)
	}
	if patch.Status == nil || string(*patch.Status) != "published" {
		t.Errorf("patch.Status = %v, want published", patch.Status)
	}
	if patch.PriceMinor != nil {
		t.Error("untouched field should stay nil")
	}

	if !(&UpdateTourRequest{}).ToPatch().IsEmpty() {
		t.Error("patch from empty request should be empty")
	}
}
