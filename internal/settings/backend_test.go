package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConstEchoesInitial(t *testing.T) {
	var got int
	b := Const[int]{}
	if err := b.RegisterSetting("x", 42, func(v int) { got = v }); err != nil {
		t.Fatalf("RegisterSetting: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

// TestJSONFileRoundTrip covers spec.md §8 scenario 5's json_file_setting
// round trip: a value persisted is read back on the next RegisterSetting.
func TestJSONFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b, err := NewJSONFile[int](dir, nil)
	if err != nil {
		t.Fatalf("NewJSONFile: %v", err)
	}

	if err := b.Persist("threshold", 7); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	var got int
	if err := b.RegisterSetting("threshold", 0, func(v int) { got = v }); err != nil {
		t.Fatalf("RegisterSetting: %v", err)
	}
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestJSONFileFallsBackOnMissing(t *testing.T) {
	dir := t.TempDir()
	b, err := NewJSONFile[int](dir, nil)
	if err != nil {
		t.Fatalf("NewJSONFile: %v", err)
	}

	var got int
	if err := b.RegisterSetting("absent", 99, func(v int) { got = v }); err != nil {
		t.Fatalf("RegisterSetting: %v", err)
	}
	if got != 99 {
		t.Fatalf("got %d, want 99 (fallback)", got)
	}
}

func TestJSONFileFallsBackOnMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	b, err := NewJSONFile[int](dir, nil)
	if err != nil {
		t.Fatalf("NewJSONFile: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var got int
	if err := b.RegisterSetting("bad", 5, func(v int) { got = v }); err != nil {
		t.Fatalf("RegisterSetting: %v", err)
	}
	if got != 5 {
		t.Fatalf("got %d, want 5 (fallback on malformed JSON)", got)
	}
}

func TestYAMLFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b, err := NewYAMLFile[string](dir, nil)
	if err != nil {
		t.Fatalf("NewYAMLFile: %v", err)
	}

	if err := b.Persist("label", "hello"); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	var got string
	if err := b.RegisterSetting("label", "", func(v string) { got = v }); err != nil {
		t.Fatalf("RegisterSetting: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got %q, want hello", got)
	}
}
