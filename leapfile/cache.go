package leapfile

import (
	"sync"
)

// entry holds the outcome of loading one path. The file is read once,
// however many goroutines ask for it.
type entry struct {
	once sync.Once
	file *File
	err  error
}

func (e *entry) load(path string) (*File, error) {
	e.once.Do(func() {
		e.file, e.err = Load(path)
	})
	return e.file, e.err
}

// Cache memoizes parsed files by path. It is safe for concurrent use.
// The zero value is ready to use.
type Cache struct {
	entries sync.Map // path -> *entry
}

// entry returns the entry of path, creating it on first use.
func (c *Cache) entry(path string) *entry {
	if e, ok := c.entries.Load(path); ok {
		return e.(*entry)
	}
	e, _ := c.entries.LoadOrStore(path, &entry{})
	return e.(*entry)
}

// Load returns the parsed file at path, reading it on first use only.
// A failed load is remembered too; Forget the path to retry.
func (c *Cache) Load(path string) (*File, error) {
	return c.entry(path).load(path)
}

// Forget drops path, so that the next Load reads it again.
func (c *Cache) Forget(path string) {
	c.entries.Delete(path)
}

// Len returns the number of cached paths, loaded or failed.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
