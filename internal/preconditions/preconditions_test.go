package preconditions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.OBJ")
	if err := os.WriteFile(scene, []byte("v 0 0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(dir, "scene.stl")
	if err := os.WriteFile(other, []byte("solid"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"valid", scene, ""},
		{"missing", filepath.Join(dir, "gone.obj"), "cannot access file"},
		{"directory", dir, "is a directory"},
		{"wrong extension", other, "not an OBJ file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFiles([]string{tt.path})
			if tt.want == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()

	if err := ValidateOutputPath(filepath.Join(dir, "out.obj")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateOutputPath(filepath.Join(dir, "missing", "out.obj")); err == nil {
		t.Error("expected error for missing directory")
	}
	if err := ValidateOutputPath(dir); err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Errorf("expected directory error, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.obj")
	if err := os.WriteFile(scene, []byte("v 0 0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Check(scene, filepath.Join(dir, "out.obj"), "", filepath.Join(dir, "report.xlsx")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := Check(scene, filepath.Join(dir, "nowhere", "preview.pdf"))
	if err == nil || !strings.HasPrefix(err.Error(), "preview.pdf:") {
		t.Errorf("expected error naming the output, got %v", err)
	}

	err = Check(filepath.Join(dir, "gone.obj"))
	if err == nil || !strings.HasPrefix(err.Error(), "Input:") {
		t.Errorf("expected input error, got %v", err)
	}
}
