package mcpserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/googlemap/mapdoc"
)

const testMapYAML = `
coordinates:
  louvre: {lat: 48.8606, lng: 2.3376}
map:
  htmlContainerId: paris
  overlays:
    markers:
      - position: {ref: louvre}
      - position: {lat: 48.8584, lng: 2.2945}
    circles:
      - center: {ref: louvre}
        radius: 250
`

const cityFixture = "../../mapdoc/testdata/city.yaml"

func TestDocInput_Validation(t *testing.T) {
	_, err := docInput{}.load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content")

	_, err = docInput{File: cityFixture, Content: testMapYAML}.load()
	require.Error(t, err)

	_, err = docInput{Content: testMapYAML, Format: "toml"}.load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestDocInput_ContentSizeLimit(t *testing.T) {
	prev := cfg.MaxDocumentSize
	cfg.MaxDocumentSize = 16
	t.Cleanup(func() { cfg.MaxDocumentSize = prev })

	_, err := docInput{Content: testMapYAML}.load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 16 bytes")
}

func TestDocInput_LoadContent(t *testing.T) {
	docCache.reset()

	res, err := docInput{Content: testMapYAML}.load()
	require.NoError(t, err)
	assert.Equal(t, "<content>", res.SourcePath)
	assert.Equal(t, mapdoc.FormatYAML, res.Format)
	assert.Len(t, res.Map.Overlays().Markers(), 2)
}

func TestDocInput_Cache(t *testing.T) {
	docCache.reset()
	t.Cleanup(docCache.reset)

	first, err := docInput{Content: testMapYAML}.load()
	require.NoError(t, err)
	second, err := docInput{Content: testMapYAML}.load()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, docCache.size())

	_, err = docInput{File: cityFixture}.load()
	require.NoError(t, err)
	assert.Equal(t, 2, docCache.size())
}

func TestDocInput_CacheDisabled(t *testing.T) {
	docCache.reset()
	prev := cfg.CacheEnabled
	cfg.CacheEnabled = false
	t.Cleanup(func() { cfg.CacheEnabled = prev })

	first, err := docInput{Content: testMapYAML}.load()
	require.NoError(t, err)
	second, err := docInput{Content: testMapYAML}.load()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 0, docCache.size())
}

func TestDocInput_FileKeyTracksModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testMapYAML), 0o600))

	key := docInput{File: path}.cacheKey()
	require.NotEmpty(t, key)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))
	assert.NotEqual(t, key, docInput{File: path}.cacheKey())

	assert.Empty(t, docInput{File: filepath.Join(t.TempDir(), "missing.yaml")}.cacheKey())
	assert.True(t, strings.HasPrefix(docInput{Content: "map: {}"}.cacheKey(), "content:"))
}

func TestDocCache_Eviction(t *testing.T) {
	c := &docCacheStore{entries: make(map[string]*cacheEntry), maxSize: 2}
	a, b, d := &mapdoc.Result{}, &mapdoc.Result{}, &mapdoc.Result{}

	c.put("a", a, time.Minute)
	c.put("b", b, time.Minute)
	c.entries["a"].insertAt = time.Now().Add(-time.Hour)
	c.put("d", d, time.Minute)

	assert.Nil(t, c.get("a"), "least recently used entry is evicted")
	assert.Same(t, b, c.get("b"))
	assert.Same(t, d, c.get("d"))
}

func TestDocCache_Expiry(t *testing.T) {
	c := &docCacheStore{entries: make(map[string]*cacheEntry), maxSize: 5}
	c.put("old", &mapdoc.Result{}, -time.Second)
	c.put("new", &mapdoc.Result{}, time.Minute)

	c.sweep()
	assert.Equal(t, 1, c.size())
	assert.Nil(t, c.get("old"))
	assert.NotNil(t, c.get("new"))
}
