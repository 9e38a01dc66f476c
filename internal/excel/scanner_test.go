package excel

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestFindInputFiles(t *testing.T) {
	dir := t.TempDir()
	touch := func(parts ...string) {
		t.Helper()
		path := filepath.Join(append([]string{dir}, parts...)...)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	touch("january.csv")
	touch("budget.XLSX")
	touch("notes.txt")
	touch("~$budget.xlsx")
	touch("archive", "february.csv")
	touch(".cache", "ignored.csv")

	files, err := FindInputFiles(dir)
	if err != nil {
		t.Fatalf("FindInputFiles: %v", err)
	}

	var names []string
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("Rel: %v", err)
		}
		names = append(names, filepath.ToSlash(rel))
	}
	sort.Strings(names)

	want := []string{"archive/february.csv", "budget.XLSX", "january.csv"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("files = %v, want %v", names, want)
	}
}

func TestFindInputFilesMissingDirectory(t *testing.T) {
	if _, err := FindInputFiles(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("FindInputFiles accepted a missing directory")
	}
}
