package snapshot

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/yndnr/keyval-go/internal/core/domain"
	"github.com/yndnr/keyval-go/internal/storage/memory"
	"github.com/yndnr/keyval-go/pkg/crypto/adaptive"
)

func TestRepository_SaveLoad(t *testing.T) {
	r := NewRepository(WithFs(afero.NewMemMapFs()))
	want := map[string]string{"sample_key": "sample_value", "other": ""}

	info, err := r.Save(memory.FromEntries(want), "/data/state.bin")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if info.KeyCount != 2 {
		t.Errorf("KeyCount = %d, want 2", info.KeyCount)
	}
	if info.Size == 0 {
		t.Error("Size should not be zero")
	}
	if info.Path != "/data/state.bin" {
		t.Errorf("Path = %q", info.Path)
	}

	got, err := r.Load("/data/state.bin")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got.Entries()); diff != "" {
		t.Errorf("loaded store mismatch (-want +got):\n%s", diff)
	}
}

func TestRepository_OnDisk(t *testing.T) {
	r := NewRepository()
	path := filepath.Join(t.TempDir(), "state.bin")

	if _, err := r.Save(memory.FromEntries(map[string]string{"k": "v"}), path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := r.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, ok := got.Get("k"); !ok || v != "v" {
		t.Errorf("Get(k) = %q, %v", v, ok)
	}

	// No temp files are left behind.
	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(path), ".state.bin.tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestRepository_SaveOverwrites(t *testing.T) {
	r := NewRepository(WithFs(afero.NewMemMapFs()))

	if _, err := r.Save(memory.FromEntries(map[string]string{"k": "v1", "gone": "x"}), "state.bin"); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, err := r.Save(memory.FromEntries(map[string]string{"k": "v2"}), "state.bin"); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := r.Load("state.bin")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"k": "v2"}, got.Entries()); diff != "" {
		t.Errorf("only the latest snapshot should survive (-want +got):\n%s", diff)
	}
}

func TestRepository_LoadMissing(t *testing.T) {
	r := NewRepository(WithFs(afero.NewMemMapFs()))

	_, err := r.Load("nonexistent")
	if !errors.Is(err, domain.ErrSnapshotIO) {
		t.Fatalf("Load error = %v, want ErrSnapshotIO", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load error = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestRepository_LoadCorrupt(t *testing.T) {
	memFs := afero.NewMemMapFs()
	r := NewRepository(WithFs(memFs))

	tests := []struct {
		name string
		data []byte
	}{
		{"empty file", []byte{}},
		{"garbage", []byte("definitely not a snapshot")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := afero.WriteFile(memFs, "state.bin", tt.data, 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := r.Load("state.bin")
			if !errors.Is(err, domain.ErrSnapshotDecode) {
				t.Fatalf("Load error = %v, want ErrSnapshotDecode", err)
			}
		})
	}
}

func TestRepository_SaveReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	r := NewRepository(WithFs(base))
	if _, err := r.Save(memory.FromEntries(map[string]string{"k": "old"}), "state.bin"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ro := NewRepository(WithFs(afero.NewReadOnlyFs(base)))
	_, err := ro.Save(memory.FromEntries(map[string]string{"k": "new"}), "state.bin")
	if !errors.Is(err, domain.ErrSnapshotIO) {
		t.Fatalf("Save error = %v, want ErrSnapshotIO", err)
	}

	// The previous snapshot is untouched.
	got, err := r.Load("state.bin")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, _ := got.Get("k"); v != "old" {
		t.Errorf("Get(k) = %q, want old", v)
	}
}

func TestRepository_Encrypted(t *testing.T) {
	memFs := afero.NewMemMapFs()
	c, err := NewCipher("correct horse battery staple", adaptive.CipherAuto)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	r := NewRepository(WithFs(memFs), WithCipher(c))
	if !r.Encrypted() {
		t.Fatal("Encrypted() = false")
	}

	want := map[string]string{"secret": "value"}
	if _, err := r.Save(memory.FromEntries(want), "state.bin"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := r.Load("state.bin")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got.Entries()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// A different key cannot open it.
	wrong, _ := NewCipher("another sufficiently long key", c.Type())
	if _, err := NewRepository(WithFs(memFs), WithCipher(wrong)).Load("state.bin"); !errors.Is(err, domain.ErrSnapshotDecode) {
		t.Errorf("wrong-key Load error = %v, want ErrSnapshotDecode", err)
	}
}
