package gormrepo

import (
	"testing"
	"testing/fstest"
)

func TestMigrationFiles_SortedSQLOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_b.sql":       {Data: []byte("SELECT 1;")},
		"0001_a.sql":       {Data: []byte("SELECT 1;")},
		"README.md":        {Data: []byte("notes")},
		"archive/0000.sql": {Data: []byte("SELECT 1;")},
	}
	got, err := migrationFiles(fsys)
	if err != nil {
		t.Fatalf("migrationFiles error: %v", err)
	}
	want := []string{"0001_a.sql", "0002_b.sql"}
	if len(got) != len(want) {
		t.Fatalf("files mismatch: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("files mismatch: got=%v want=%v", got, want)
		}
	}
}
