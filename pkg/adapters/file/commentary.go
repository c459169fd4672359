// Package file provides the file-backed commentary source.
//
// A commentary document maps hexagram names to their texts:
//
//	地山谦:
//	  judgment: 谦：亨，君子有终。
//	  image: 地中有山，谦。
//	  lines:
//	    - 初六：谦谦君子，用涉大川，吉。
//
// Files ending in .json are read as JSON, everything else as YAML.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/najia/pkg/adapters/memory"
	"github.com/aretw0/najia/pkg/domain"
)

// Commentary implements ports.Commentary on top of a YAML or JSON document.
type Commentary struct {
	path string

	mu    sync.RWMutex
	store *memory.Commentary
}

// Load reads the document at path. A missing file yields an empty source.
func Load(path string) (*Commentary, error) {
	c := &Commentary{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the document, replacing the entries atomically.
func (c *Commentary) Reload() error {
	texts, err := readTexts(c.path)
	if err != nil {
		return err
	}
	store := memory.NewCommentary(texts)

	c.mu.Lock()
	c.store = store
	c.mu.Unlock()
	return nil
}

// Lookup returns the text of the named hexagram.
func (c *Commentary) Lookup(ctx context.Context, name string) (domain.Text, bool, error) {
	c.mu.RLock()
	store := c.store
	c.mu.RUnlock()
	return store.Lookup(ctx, name)
}

// Len returns the number of loaded entries.
func (c *Commentary) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Len()
}

// Path returns the document location.
func (c *Commentary) Path() string {
	return c.path
}

func readTexts(path string) (map[string]domain.Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]domain.Text{}, nil
		}
		return nil, fmt.Errorf("failed to read commentary: %w", err)
	}

	texts := make(map[string]domain.Text)
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &texts); err != nil {
			return nil, fmt.Errorf("failed to parse commentary %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &texts); err != nil {
			return nil, fmt.Errorf("failed to parse commentary %s: %w", filepath.Base(path), err)
		}
	}

	for name, text := range texts {
		if name == "" {
			delete(texts, name)
			continue
		}
		if text.Name == "" {
			text.Name = name
			texts[name] = text
		}
	}
	return texts, nil
}

// Save writes texts to path in the format implied by its extension.
func Save(path string, texts map[string]domain.Text) error {
	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err = json.MarshalIndent(texts, "", "  ")
	} else {
		data, err = yaml.Marshal(texts)
	}
	if err != nil {
		return fmt.Errorf("failed to encode commentary: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create commentary dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write commentary: %w", err)
	}
	return nil
}
