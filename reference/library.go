package reference

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// csvExt is the file extension of stored demonstrations.
const csvExt = ".csv"

// Library serves demonstrations from a directory of <exercise>.csv files.
// A loaded dataset stays in memory for ttl after its last load so every
// session of the same exercise shares one immutable copy.
type Library struct {
	dir   string
	cache *cache.Cache
}

// NewLibrary returns a Library rooted at dir. A ttl <= 0 keeps datasets
// until Forget is called.
func NewLibrary(dir string, ttl time.Duration) *Library {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl / 6
	}
	return &Library{
		dir:   dir,
		cache: cache.New(expiration, cleanup),
	}
}

// Get returns the demonstration for exercise id, loading and
// schema-checking it on first use.
func (l *Library) Get(id string) (Dataset, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if x, found := l.cache.Get(id); found {
		return x.(Dataset), nil
	}

	t, err := LoadCSVFile(filepath.Join(l.dir, id+csvExt))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrExerciseNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if err := ValidateSchema(t); err != nil {
		return nil, fmt.Errorf("reference: %s: %w", id, err)
	}

	l.cache.Set(id, Dataset(t), cache.DefaultExpiration)
	return t, nil
}

// Put registers an in-memory dataset under id, replacing any cached one.
func (l *Library) Put(id string, ds Dataset) error {
	if err := checkID(id); err != nil {
		return err
	}
	l.cache.Set(id, ds, cache.DefaultExpiration)
	return nil
}

// Forget evicts id from memory; the file is untouched.
func (l *Library) Forget(id string) {
	l.cache.Delete(id)
}

// Cached returns the number of datasets currently held in memory.
func (l *Library) Cached() int {
	return l.cache.ItemCount()
}

// List returns the exercise ids available on disk and in memory, sorted.
func (l *Library) List() ([]string, error) {
	seen := make(map[string]struct{})
	for id := range l.cache.Items() {
		seen[id] = struct{}{}
	}

	if l.dir != "" {
		entries, err := os.ReadDir(l.dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reference: list %s: %w", l.dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), csvExt) {
				continue
			}
			seen[strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// checkID rejects ids that could escape the library directory.
func checkID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadExerciseID, id)
	}
	return nil
}
