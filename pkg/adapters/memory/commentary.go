package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/najia/pkg/domain"
)

// Commentary implements ports.Commentary using an in-memory map.
// Safe for concurrent use.
type Commentary struct {
	mu    sync.RWMutex
	texts map[string]domain.Text
}

// NewCommentary creates a commentary source from texts keyed by hexagram name.
// Entries without a Name take the key as their name.
func NewCommentary(texts map[string]domain.Text) *Commentary {
	c := &Commentary{texts: make(map[string]domain.Text, len(texts))}
	for name, text := range texts {
		c.Put(name, text)
	}
	return c
}

// Put stores or replaces the text of a hexagram.
func (c *Commentary) Put(name string, text domain.Text) {
	if text.Name == "" {
		text.Name = name
	}
	// Copy the slice so the caller cannot mutate stored text.
	text.Lines = append([]string(nil), text.Lines...)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.texts[name] = text
}

// Lookup returns the text stored for name.
func (c *Commentary) Lookup(ctx context.Context, name string) (domain.Text, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Text{}, false, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	text, ok := c.texts[name]
	if !ok {
		return domain.Text{}, false, nil
	}
	text.Lines = append([]string(nil), text.Lines...)
	return text, true, nil
}

// Names returns the stored hexagram names in sorted order.
func (c *Commentary) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.texts))
	for k := range c.texts {
		names = append(names, k)
	}
	sort.Strings(names) // Deterministic order
	return names
}

// Len returns the number of stored entries.
func (c *Commentary) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.texts)
}
