package driver

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"todoc/internal/doc"
)

// Current schema version - increment when diskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores extracted per-file documents keyed by the sha256 of the
// file's content, so unchanged files skip the pipeline entirely.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type diskPayload struct {
	Schema uint16      `msgpack:"schema"`
	File   doc.FileDoc `msgpack:"file"`
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location (XDG_CACHE_HOME or ~/.cache) under the given app name.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory (tests,
// project-local caches).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// A "docs" subdirectory keeps the cache root readable and easy to wipe.
	return filepath.Join(c.dir, "docs", hexKey+".msgpack")
}

// Lookup returns the cached document for a content hash, if present and
// readable with the current schema.
func (c *DiskCache) Lookup(key [32]byte) (*doc.FileDoc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}

	var payload diskPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	return &payload.File, true
}

// Store writes the document for a content hash. Failures are silent:
// the cache is an optimization, never a correctness dependency.
func (c *DiskCache) Store(key [32]byte, fd *doc.FileDoc) {
	if fd == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := msgpack.Marshal(diskPayload{
		Schema: diskCacheSchemaVersion,
		File:   *fd,
	})
	if err != nil {
		return
	}

	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}

	// Write-then-rename so concurrent readers never see a torn file.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return
	}
	_ = os.Rename(tmp.Name(), path)
}

// Clear removes every cached document.
func (c *DiskCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.RemoveAll(filepath.Join(c.dir, "docs"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
