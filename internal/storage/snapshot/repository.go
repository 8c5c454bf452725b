package snapshot

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/yndnr/keyval-go/internal/core/domain"
	"github.com/yndnr/keyval-go/internal/storage/memory"
	"github.com/yndnr/keyval-go/pkg/crypto/adaptive"
)

// additionalData binds sealed snapshots to this file format.
var additionalData = []byte("keyval/snapshot/v1")

// Info describes a snapshot that was written.
type Info struct {
	Path      string
	KeyCount  int
	Size      int64
	CreatedAt time.Time
}

// Repository loads and saves store snapshots.
type Repository struct {
	fs     afero.Fs
	cipher adaptive.Cipher
}

// Option configures a Repository.
type Option func(*Repository)

// WithFs sets the filesystem. The default is the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(r *Repository) {
		r.fs = fs
	}
}

// WithCipher enables at-rest encryption. A nil cipher disables it.
func WithCipher(c adaptive.Cipher) Option {
	return func(r *Repository) {
		r.cipher = c
	}
}

// NewRepository creates a repository.
func NewRepository(opts ...Option) *Repository {
	r := &Repository{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Encrypted reports whether snapshots are sealed with a cipher.
func (r *Repository) Encrypted() bool {
	return r.cipher != nil
}

// Load reads the snapshot at path.
//
// A file that cannot be opened or read yields domain.ErrSnapshotIO wrapping
// the filesystem error, so a missing file also matches fs.ErrNotExist.
// Content that cannot be decrypted or decoded yields domain.ErrSnapshotDecode.
func (r *Repository) Load(path string) (*memory.Store, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, domain.ErrSnapshotIO.WithDetails("read " + path).WithCause(err)
	}

	if r.cipher != nil {
		if len(data) == 0 {
			return nil, domain.ErrSnapshotDecode.WithDetails("0 bytes read")
		}
		data, err = r.cipher.Decrypt(data, additionalData)
		if err != nil {
			return nil, domain.ErrSnapshotDecode.WithDetails("decrypt " + path).WithCause(err)
		}
	}

	s, err := memory.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot: load %s: %w", path, err)
	}
	return s, nil
}

// Save writes store to path, replacing any existing file.
//
// Failures yield domain.ErrSnapshotIO. On failure the previous file at path,
// if any, is left untouched.
func (r *Repository) Save(store *memory.Store, path string) (*Info, error) {
	now := time.Now()
	data := memory.Encode(store)

	if r.cipher != nil {
		sealed, err := r.cipher.Encrypt(data, additionalData)
		if err != nil {
			return nil, domain.ErrSnapshotIO.WithDetails("encrypt").WithCause(err)
		}
		data = sealed
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := afero.TempFile(r.fs, dir, "."+base+".tmp-*")
	if err != nil {
		return nil, domain.ErrSnapshotIO.WithDetails("create temp file in " + dir).WithCause(err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = r.fs.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, domain.ErrSnapshotIO.WithDetails("write " + tmpPath).WithCause(err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return nil, domain.ErrSnapshotIO.WithDetails("sync " + tmpPath).WithCause(err)
	}
	if err := tmp.Close(); err != nil {
		return nil, domain.ErrSnapshotIO.WithDetails("close " + tmpPath).WithCause(err)
	}
	if err := r.fs.Rename(tmpPath, path); err != nil {
		return nil, domain.ErrSnapshotIO.WithDetails("rename to " + path).WithCause(err)
	}
	committed = true

	return &Info{
		Path:      path,
		KeyCount:  store.Len(),
		Size:      int64(len(data)),
		CreatedAt: now,
	}, nil
}
