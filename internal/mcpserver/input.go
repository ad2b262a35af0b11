package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/googlemap/mapdoc"
)

// docInput represents the two ways a map document can be given to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a map document (YAML or JSON) on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline map document content (YAML or JSON)"`
	Format  string `json:"format,omitempty"  jsonschema:"Document format: yaml or json. Detected when omitted"`
}

// cacheEntry holds a loaded document with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *mapdoc.Result
	insertAt  time.Time
	expiresAt time.Time
}

// docCacheStore is a session-scoped cache of loaded documents. File inputs
// are keyed by (absolute path, modification time), inline content by its
// SHA-256 hash. Cached maps are only read by the tools.
type docCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var docCache = &docCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are removed lazily.
func (c *docCacheStore) get(key string) *mapdoc.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.insertAt = time.Now()
	return e.result
}

// put stores a result, evicting the least recently used entry when full.
func (c *docCacheStore) put(key string, result *mapdoc.Result, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}
	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = entry
}

// sweep removes every expired entry.
func (c *docCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper removes expired entries every interval until ctx is done.
// Only the first call starts a sweeper.
func (c *docCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears the cache. Used in tests.
func (c *docCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *docCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key of d, or "" when d cannot be cached.
func (d docInput) cacheKey() string {
	switch {
	case d.File != "":
		abs, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(abs)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d:%s", abs, info.ModTime().UnixNano(), d.Format)
	case d.Content != "":
		h := sha256.Sum256([]byte(d.Content))
		return fmt.Sprintf("content:%s:%s", hex.EncodeToString(h[:]), d.Format)
	default:
		return ""
	}
}

// load loads the document, going through the cache when it is enabled.
func (d docInput) load() (*mapdoc.Result, error) {
	if (d.File == "") == (d.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if d.Content != "" && int64(len(d.Content)) > cfg.MaxDocumentSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; set GMAPS_MAX_DOCUMENT_SIZE to increase",
			len(d.Content), cfg.MaxDocumentSize)
	}

	format := cfg.DefaultFormat
	if d.Format != "" {
		f, ok := mapdoc.ParseFormat(d.Format)
		if !ok {
			return nil, fmt.Errorf("invalid format %q; valid formats: yaml, json", d.Format)
		}
		format = f
	}

	var key string
	ttl := cfg.CacheContentTTL
	if cfg.CacheEnabled {
		key = d.cacheKey()
		if d.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached := docCache.get(key); cached != nil {
			return cached, nil
		}
	}

	opts := []mapdoc.Option{mapdoc.WithMaxSize(cfg.MaxDocumentSize)}
	switch {
	case d.File != "":
		opts = append(opts, mapdoc.WithFilePath(d.File))
		if d.Format != "" {
			opts = append(opts, mapdoc.WithFormat(format))
		}
	default:
		opts = append(opts,
			mapdoc.WithReader(strings.NewReader(d.Content)),
			mapdoc.WithSourceName("<content>"),
			mapdoc.WithFormat(format))
	}

	result, err := mapdoc.Load(opts...)
	if err != nil {
		return nil, err
	}
	if key != "" {
		docCache.put(key, result, ttl)
	}
	return result, nil
}
