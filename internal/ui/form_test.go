package ui

import (
	"strings"
	"testing"

	"github.com/spotbird/spotmix/internal/shared"
)

func testDefaults() shared.DefaultsConfig {
	return shared.DefaultsConfig{
		PlaylistName: "My Discovery Mix",
		Description:  "test mix",
		TrackCount:   500,
		Genres:       []string{"pop", "dance"},
	}
}

func TestDashboardForm(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		f := newDashboardForm(testDefaults())

		if f.name.Value() != "My Discovery Mix" {
			t.Errorf("expected default playlist name, got %s", f.name.Value())
		}
		if f.count.Value() != "500" {
			t.Errorf("expected default track count '500', got %s", f.count.Value())
		}
		if !f.selection.Has("pop") || !f.selection.Has("dance") {
			t.Error("expected default genres to be preselected")
		}
	})

	t.Run("BuildRequest", func(t *testing.T) {
		t.Run("Valid Form", func(t *testing.T) {
			f := newDashboardForm(testDefaults())
			req, err := f.buildRequest()

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if req.Name != "My Discovery Mix" {
				t.Errorf("expected name from form, got %s", req.Name)
			}
			if req.TrackCount != 500 {
				t.Errorf("expected track count 500, got %d", req.TrackCount)
			}
			if len(req.Genres) != 2 {
				t.Errorf("expected 2 genres, got %d", len(req.Genres))
			}
		})

		t.Run("Non-Numeric Track Count", func(t *testing.T) {
			f := newDashboardForm(testDefaults())
			f.count.SetValue("lots")

			_, err := f.buildRequest()
			if err == nil {
				t.Fatal("expected error for non-numeric track count")
			}
			if !strings.Contains(err.Error(), "must be a number") {
				t.Errorf("expected 'must be a number' error, got %v", err)
			}
		})

		t.Run("Empty Track Count", func(t *testing.T) {
			f := newDashboardForm(testDefaults())
			f.count.SetValue("")

			if _, err := f.buildRequest(); err == nil {
				t.Error("expected error for empty track count")
			}
		})

		t.Run("Zero Track Count", func(t *testing.T) {
			f := newDashboardForm(testDefaults())
			f.count.SetValue("0")

			_, err := f.buildRequest()
			if err == nil {
				t.Fatal("expected error for zero track count")
			}
			if !strings.Contains(err.Error(), "positive") {
				t.Errorf("expected 'positive' validation error, got %v", err)
			}
		})

		t.Run("No Genres Selected", func(t *testing.T) {
			f := newDashboardForm(testDefaults())
			f.clearSelection()

			if _, err := f.buildRequest(); err == nil {
				t.Error("expected error with no genres selected")
			}
		})
	})

	t.Run("Catalog", func(t *testing.T) {
		t.Run("SetCatalog Marks Preselected Genres", func(t *testing.T) {
			f := newDashboardForm(testDefaults())
			f.setCatalog([]string{"pop", "rock", "dance"})

			items := f.genres.Items()
			if len(items) != 3 {
				t.Fatalf("expected 3 items, got %d", len(items))
			}
			if !items[0].(genreItem).selected {
				t.Error("expected 'pop' item to render selected")
			}
			if items[1].(genreItem).selected {
				t.Error("expected 'rock' item to render unselected")
			}
		})

		t.Run("ToggleCurrent Flips Membership", func(t *testing.T) {
			f := newDashboardForm(testDefaults())
			f.setCatalog([]string{"pop", "rock"})
			f.genres.Select(1)

			f.toggleCurrent()
			if !f.selection.Has("rock") {
				t.Error("expected 'rock' to be selected after toggle")
			}

			f.toggleCurrent()
			if f.selection.Has("rock") {
				t.Error("expected 'rock' to be deselected after second toggle")
			}
		})

		t.Run("ClearSelection Empties And Repaints", func(t *testing.T) {
			f := newDashboardForm(testDefaults())
			f.setCatalog([]string{"pop", "dance"})
			f.clearSelection()

			if f.selection.Len() != 0 {
				t.Errorf("expected empty selection, got %d", f.selection.Len())
			}
			for _, item := range f.genres.Items() {
				if item.(genreItem).selected {
					t.Errorf("expected %s item to render unselected", item.(genreItem).name)
				}
			}
		})

		t.Run("Selection Survives Catalog Reload", func(t *testing.T) {
			f := newDashboardForm(testDefaults())
			f.setCatalog([]string{"pop", "rock"})
			f.genres.Select(1)
			f.toggleCurrent()

			f.setCatalog([]string{"pop", "rock", "jazz"})
			if !f.selection.Has("rock") {
				t.Error("expected selection to survive a catalog reload")
			}
		})
	})

	t.Run("CycleFocus", func(t *testing.T) {
		f := newDashboardForm(testDefaults())

		f.cycleFocus(false)
		if f.focus != focusCount {
			t.Errorf("expected focus on count, got %d", f.focus)
		}
		if !f.count.Focused() {
			t.Error("expected count input to be focused")
		}
		if f.name.Focused() {
			t.Error("expected name input to be blurred")
		}

		f.cycleFocus(true)
		if f.focus != focusName {
			t.Errorf("expected focus back on name, got %d", f.focus)
		}

		// wraps around backwards to the genre list
		f.cycleFocus(true)
		if f.focus != focusGenres {
			t.Errorf("expected focus to wrap to genres, got %d", f.focus)
		}
	})
}
