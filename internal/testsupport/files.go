package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"camlink/internal/specs"
)

// WriteRecord writes <dir>/<source>/<name>.json holding attrs and returns the
// record id the loader will assign to it.
func WriteRecord(t testing.TB, dir, source, name string, attrs map[string]any) string {
	t.Helper()

	data, err := json.Marshal(attrs)
	if err != nil {
		t.Fatalf("marshal record %s/%s: %v", source, name, err)
	}
	WriteRaw(t, filepath.Join(dir, source, name+".json"), data)
	return specs.RecordID(source, name+".json")
}

// WriteTitle writes a record whose only attribute is the page title.
func WriteTitle(t testing.TB, dir, source, name, title string) string {
	t.Helper()
	return WriteRecord(t, dir, source, name, map[string]any{specs.TitleAttribute: title})
}

// WriteRaw writes data to path, creating parent directories.
func WriteRaw(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
