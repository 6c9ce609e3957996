package worklets

import (
	"testing"
	"time"

	"github.com/kendallross/studypace/internal/models"
)

func TestParseDeadline(t *testing.T) {
	loc := time.UTC

	t.Run("date with time", func(t *testing.T) {
		got, err := parseDeadline("2025-03-10 14:30", loc)
		if err != nil {
			t.Fatalf("parseDeadline failed: %v", err)
		}
		want := time.Date(2025, 3, 10, 14, 30, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("parseDeadline = %v, want %v", got, want)
		}
	})

	t.Run("bare date means end of day", func(t *testing.T) {
		got, err := parseDeadline("2025-03-10", loc)
		if err != nil {
			t.Fatalf("parseDeadline failed: %v", err)
		}
		want := time.Date(2025, 3, 10, 23, 59, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("parseDeadline = %v, want %v", got, want)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		if _, err := parseDeadline("10/03/2025", loc); err == nil {
			t.Error("expected error for invalid format")
		}
	})
}

func TestParseSubtask(t *testing.T) {
	materials := []models.Material{
		{ID: "m1", Name: "Textbook", Kind: models.MaterialPages, Length: 300},
	}

	t.Run("name and weight", func(t *testing.T) {
		st, err := parseSubtask("Chapter 1:25", nil)
		if err != nil {
			t.Fatalf("parseSubtask failed: %v", err)
		}
		if st.Name != "Chapter 1" || st.Weight != 25 {
			t.Errorf("parseSubtask = %+v", st)
		}
		if st.ID == "" {
			t.Error("expected a generated ID")
		}
	})

	t.Run("with material by name", func(t *testing.T) {
		st, err := parseSubtask("Chapter 1:25:Textbook", materials)
		if err != nil {
			t.Fatalf("parseSubtask failed: %v", err)
		}
		if st.MaterialID != "m1" {
			t.Errorf("material ID = %q, want m1", st.MaterialID)
		}
	})

	t.Run("with material by ID", func(t *testing.T) {
		st, err := parseSubtask("Chapter 1:25:m1", materials)
		if err != nil {
			t.Fatalf("parseSubtask failed: %v", err)
		}
		if st.MaterialID != "m1" {
			t.Errorf("material ID = %q, want m1", st.MaterialID)
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		if _, err := parseSubtask("Chapter 1:25:Nope", materials); err == nil {
			t.Error("expected error for unknown material")
		}
	})

	t.Run("bad weight", func(t *testing.T) {
		if _, err := parseSubtask("Chapter 1:heavy", nil); err == nil {
			t.Error("expected error for non-numeric weight")
		}
	})

	t.Run("missing weight", func(t *testing.T) {
		if _, err := parseSubtask("Chapter 1", nil); err == nil {
			t.Error("expected error for missing weight")
		}
	})
}

func TestParseMaterial(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		mat, err := parseMaterial("Textbook:pages:300")
		if err != nil {
			t.Fatalf("parseMaterial failed: %v", err)
		}
		if mat.Name != "Textbook" || mat.Kind != models.MaterialPages || mat.Length != 300 {
			t.Errorf("parseMaterial = %+v", mat)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		if _, err := parseMaterial("Textbook:scrolls:300"); err == nil {
			t.Error("expected error for invalid kind")
		}
	})

	t.Run("non-positive length", func(t *testing.T) {
		if _, err := parseMaterial("Textbook:pages:0"); err == nil {
			t.Error("expected error for zero length")
		}
	})
}
