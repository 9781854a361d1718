package cache

/*
Responsibilities
- Persist fetched HTTP responses keyed by canonical URL
- Serve cached entries back to the engine so re-crawling an unchanged
  URL (a re-run, or a cron recurrence) can skip the network round trip
- Enforce a freshness window before treating an entry as usable

Non-goal: this is a response cache, not a document store. It never
holds extracted or transformed content, only what the fetcher saw on
the wire. Persisting rendered/extracted output is out of scope.
*/

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/rohmanhakim/crawlkit/internal/metadata"
	"github.com/rohmanhakim/crawlkit/pkg/failure"
	"github.com/rohmanhakim/crawlkit/pkg/fileutil"
	"github.com/rohmanhakim/crawlkit/pkg/hashutil"
)

// Store is the crawl-wide response cache. Safe for concurrent use: Get
// and Put are called from every fetch worker goroutine.
type Store struct {
	metadataSink metadata.MetadataSink
	dir          string
	ttl          time.Duration

	mu   sync.RWMutex
	memo map[string]Entry
}

// NewStore builds a Store rooted at dir with the given freshness
// window. dir is created lazily on first Put.
func NewStore(metadataSink metadata.MetadataSink, dir string, ttl time.Duration) *Store {
	return &Store{
		metadataSink: metadataSink,
		dir:          dir,
		ttl:          ttl,
		memo:         make(map[string]Entry),
	}
}

// Get returns the cached entry for canonicalURL, if present and still
// fresh. A stale or missing entry is reported as a miss; it is never
// surfaced to the caller, since the engine must treat a miss and a
// stale hit identically (fall back to a live fetch).
func (s *Store) Get(canonicalURL string) (Entry, bool) {
	key := keyFor(canonicalURL)

	s.mu.RLock()
	entry, ok := s.memo[key]
	s.mu.RUnlock()
	if ok {
		if entry.Stale(s.ttl) {
			return Entry{}, false
		}
		return entry, true
	}

	entry, err := s.readFromDisk(key)
	if err != nil || entry.Stale(s.ttl) {
		return Entry{}, false
	}

	s.mu.Lock()
	s.memo[key] = entry
	s.mu.Unlock()
	return entry, true
}

// Put stores entry under its URL's canonical key, both in-memory and
// on disk, and records the write as an artifact.
func (s *Store) Put(entry Entry) failure.ClassifiedError {
	key := keyFor(entry.URL)

	s.mu.Lock()
	s.memo[key] = entry
	s.mu.Unlock()

	if err := s.writeToDisk(key, entry); err != nil {
		s.metadataSink.RecordError(
			time.Now(),
			"cache",
			"Store.Put",
			mapCacheErrorToMetadataCause(err),
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, entry.URL),
				metadata.NewAttr(metadata.AttrWritePath, err.Path),
			},
		)
		return err
	}

	s.metadataSink.RecordArtifact(
		metadata.ArtifactCacheEntry,
		s.pathFor(key),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrURL, entry.URL),
			metadata.NewAttr(metadata.AttrWritePath, s.pathFor(key)),
		},
	)
	return nil
}

func keyFor(canonicalURL string) string {
	hash, err := hashutil.HashBytes([]byte(canonicalURL), hashutil.HashAlgoBLAKE3)
	if err != nil {
		// HashBytes only fails on an unsupported algo constant; blake3
		// is always supported, so this path is unreachable in practice.
		return canonicalURL
	}
	return hash[:16]
}

func (s *Store) pathFor(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) readFromDisk(key string) (Entry, *CacheError) {
	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		return Entry{}, &CacheError{Message: err.Error(), Retryable: false, Cause: ErrCauseReadFailure, Path: s.pathFor(key)}
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, &CacheError{Message: err.Error(), Retryable: false, Cause: ErrCauseDecodeFailure, Path: s.pathFor(key)}
	}
	return entry, nil
}

func (s *Store) writeToDisk(key string, entry Entry) *CacheError {
	if err := fileutil.EnsureDir(s.dir); err != nil {
		return &CacheError{Message: err.Error(), Retryable: false, Cause: ErrCauseWriteFailure, Path: s.dir}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return &CacheError{Message: err.Error(), Retryable: false, Cause: ErrCauseEncodeFailure, Path: s.pathFor(key)}
	}

	if err := os.WriteFile(s.pathFor(key), data, 0644); err != nil {
		cause := ErrCauseWriteFailure
		retryable := false
		if errors.Is(err, syscall.ENOSPC) {
			cause = ErrCauseDiskFull
			retryable = true
		}
		return &CacheError{Message: err.Error(), Retryable: retryable, Cause: cause, Path: s.pathFor(key)}
	}
	return nil
}
