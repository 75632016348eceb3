package settings

import (
	"path/filepath"
	"testing"
)

func TestBoltRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b, err := NewBolt[int](filepath.Join(dir, "settings.db"), nil)
	if err != nil {
		t.Fatalf("NewBolt: %v", err)
	}
	defer b.Close()

	if err := b.Persist("retries", 3); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	var got int
	if err := b.RegisterSetting("retries", 0, func(v int) { got = v }); err != nil {
		t.Fatalf("RegisterSetting: %v", err)
	}
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestBoltFallsBackOnMissing(t *testing.T) {
	dir := t.TempDir()
	b, err := NewBolt[int](filepath.Join(dir, "settings.db"), nil)
	if err != nil {
		t.Fatalf("NewBolt: %v", err)
	}
	defer b.Close()

	var got int
	if err := b.RegisterSetting("absent", 11, func(v int) { got = v }); err != nil {
		t.Fatalf("RegisterSetting: %v", err)
	}
	if got != 11 {
		t.Fatalf("got %d, want 11 (fallback)", got)
	}
}
