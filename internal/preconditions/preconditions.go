package preconditions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Check verifies that the input scene can be read and every output can be
// written
func Check(input string, outputs ...string) error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"Input", func() error { return ValidateFiles([]string{input}) }},
	}
	for _, out := range outputs {
		if out == "" {
			continue
		}
		out := out
		checks = append(checks, struct {
			name string
			fn   func() error
		}{filepath.Base(out), func() error { return ValidateOutputPath(out) }})
	}

	for _, check := range checks {
		if err := check.fn(); err != nil {
			return fmt.Errorf("%s: %w", check.name, err)
		}
	}

	return nil
}

// ValidateFiles checks if OBJ files exist and are readable
func ValidateFiles(paths []string) error {
	for _, filePath := range paths {
		info, err := os.Stat(filePath)
		if err != nil {
			return fmt.Errorf("cannot access file %s: %w", filePath, err)
		}

		if info.IsDir() {
			return fmt.Errorf("%s is a directory, not a file", filePath)
		}

		if !isObjFile(filePath) {
			return fmt.Errorf("%s is not an OBJ file (must end in .obj)", filePath)
		}

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("cannot read file %s: %w", filePath, err)
		}
		file.Close()
	}

	return nil
}

func isObjFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".obj")
}

// ValidateOutputPath checks that the directory of path exists and is writable
// and that path itself is not a directory
func ValidateOutputPath(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory %s does not exist", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if info.Mode()&0200 == 0 {
		return fmt.Errorf("output directory %s is not writable", dir)
	}

	return nil
}
