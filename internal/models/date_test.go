package models

import "testing"

func TestValidDate(t *testing.T) {
	valid := []string{"2026-01-02", "2000-12-31", Today()}
	for _, s := range valid {
		if !ValidDate(s) {
			t.Errorf("ValidDate(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "today", "02/01/2026", "2026-13-01", "2026-1-2"}
	for _, s := range invalid {
		if ValidDate(s) {
			t.Errorf("ValidDate(%q) = true, want false", s)
		}
	}
}
