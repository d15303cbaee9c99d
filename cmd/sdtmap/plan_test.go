package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	content := `
[simple]
Name = "Jane Doe"
City = "Berlin"

[[repeating.Hauptbefund]]
Gen = "ABC1"
Score = "0.9"

[[repeating.Hauptbefund]]
Gen = "ABC2"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := loadPlan(path)
	if err != nil {
		t.Fatalf("loadPlan() error = %v", err)
	}

	if got := plan.Simple["Name"]; got != "Jane Doe" {
		t.Errorf("Simple[Name] = %q, want %q", got, "Jane Doe")
	}
	if got := plan.Simple["City"]; got != "Berlin" {
		t.Errorf("Simple[City] = %q, want %q", got, "Berlin")
	}

	rows := plan.Repeating["Hauptbefund"]
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["Gen"] != "ABC1" || rows[0]["Score"] != "0.9" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	if rows[1]["Gen"] != "ABC2" {
		t.Errorf("unexpected second row: %v", rows[1])
	}
}

func TestLoadPlan_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := loadPlan(path)
	if err != nil {
		t.Fatalf("empty plan should load: %v", err)
	}
	if !plan.IsEmpty() {
		t.Error("expected empty plan")
	}
}

func TestLoadPlan_MissingFile(t *testing.T) {
	if _, err := loadPlan(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing plan file")
	}
}

func TestLoadPlan_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	if err := os.WriteFile(path, []byte("[simple\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadPlan(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}
