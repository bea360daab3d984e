package fsnotify

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// changeCollector records onChange callbacks safely across goroutines.
type changeCollector struct {
	mu    sync.Mutex
	paths []string
}

func (c *changeCollector) record(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func (c *changeCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.paths)
}

func (c *changeCollector) seen(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.paths {
		if p == path {
			return true
		}
	}
	return false
}

func newTestWatcher(t *testing.T, root string) (*Watcher, *changeCollector) {
	t.Helper()
	w, err := NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })

	c := &changeCollector{}
	require.NoError(t, w.Watch(root, c.record))
	return w, c
}

func TestWatcher_KotlinFileChangeFires(t *testing.T) {
	root := t.TempDir()
	_, c := newTestWatcher(t, root)

	target := filepath.Join(root, "Main.kt")
	require.NoError(t, os.WriteFile(target, []byte("class Main"), 0644))

	require.Eventually(t, func() bool {
		return c.seen(target)
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcher_NonKotlinFileIgnored(t *testing.T) {
	root := t.TempDir()
	_, c := newTestWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))

	// Give the event loop time to (not) fire.
	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, c.count())
}

func TestWatcher_NewSubdirectoryIsWatched(t *testing.T) {
	root := t.TempDir()
	_, c := newTestWatcher(t, root)

	sub := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(sub, 0755))

	// The Create event for sub must register it before this write lands.
	target := filepath.Join(sub, "App.kt")
	require.Eventually(t, func() bool {
		os.WriteFile(target, []byte("object App"), 0644)
		return c.seen(target)
	}, 2*time.Second, 50*time.Millisecond)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Watch(t.TempDir(), func(string) {}))

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestIsKotlinFile(t *testing.T) {
	assert.True(t, isKotlinFile("a/b/Main.kt"))
	assert.True(t, isKotlinFile("script.kts"))
	assert.True(t, isKotlinFile("UPPER.KT"))
	assert.False(t, isKotlinFile("main.go"))
	assert.False(t, isKotlinFile("ktfile"))
}

func TestInIgnoredDir(t *testing.T) {
	sep := string(filepath.Separator)
	assert.True(t, inIgnoredDir("proj"+sep+"build"+sep+"Gen.kt"))
	assert.False(t, inIgnoredDir("proj"+sep+"src"+sep+"Main.kt"))
}
