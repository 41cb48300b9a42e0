package weightfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.ggsw")
	want := []float32{1, -2.5, 0, 3.140159, -0.001}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestLoad_BadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ggsw")
	if err := os.WriteFile(path, []byte("NOTAVALID HEADER AT ALL"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestLoad_ShortRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.ggsw")
	if err := Save(path, []float32{1, 2, 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if err := os.WriteFile(path, data[:len(data)-4], 0o644); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for truncated value section")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.ggsw")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveLoad_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ggsw")
	if err := Save(path, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %d values", len(got))
	}
}
