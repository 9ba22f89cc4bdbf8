package model

import (
	"testing"
)

func TestStringSlice_ValueNilWhenEmpty(t *testing.T) {
	var empty StringSlice
	v, err := empty.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != nil {
		t.Errorf("Expected NULL for an empty slice, got %v", v)
	}
}

func TestStringSlice_RoundTrip(t *testing.T) {
	original := StringSlice{"biology", "glucose"}
	v, err := original.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var scanned StringSlice
	if err := scanned.Scan(v); err != nil {
		t.Fatalf("Scan from []byte failed: %v", err)
	}
	if len(scanned) != 2 || scanned[0] != "biology" {
		t.Errorf("Expected slice to survive the column round trip, got %v", scanned)
	}

	// Some drivers hand jsonb back as string.
	var fromString StringSlice
	if err := fromString.Scan(`["a","b"]`); err != nil {
		t.Fatalf("Scan from string failed: %v", err)
	}
	if len(fromString) != 2 {
		t.Errorf("Expected 2 entries from string scan, got %v", fromString)
	}
}

func TestScanJSON_RejectsUnsupportedSource(t *testing.T) {
	var s StringSlice
	if err := s.Scan(42); err == nil {
		t.Error("Expected an error for a non-jsonb source type")
	}
}

func TestRubric_NilValueIsNull(t *testing.T) {
	var r *Rubric
	v, err := r.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != nil {
		t.Errorf("Expected NULL for a nil rubric, got %v", v)
	}
}

func TestEffectiveDateCreated(t *testing.T) {
	withDate := QuestionItem{DateCreated: "2024-01-01T00:00:00Z", LastModified: "2025-01-01T00:00:00Z"}
	if got := withDate.EffectiveDateCreated(); got != "2024-01-01T00:00:00Z" {
		t.Errorf("Expected the recorded creation date, got %q", got)
	}

	withoutDate := QuestionItem{LastModified: "2025-01-01T00:00:00Z"}
	if got := withoutDate.EffectiveDateCreated(); got != "2025-01-01T00:00:00Z" {
		t.Errorf("Expected the last-modified fallback, got %q", got)
	}
}
