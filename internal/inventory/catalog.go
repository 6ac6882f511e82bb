// Package inventory supplies container contents and metadata to the
// container flow. The shipped implementation is an in-memory placeholder; a
// real store would sit behind the same Catalog interface.
package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/selfil/selfilbot/core/bootstrap"
	"github.com/selfil/selfilbot/core/logger"
	"log/slog"
)

// ContainerInfo is the metadata shown by the container info action.
type ContainerInfo struct {
	CreatedAt string
	Kind      string
}

// Catalog resolves a container id to its contents and metadata.
type Catalog interface {
	Contents(ctx context.Context, containerID string) ([]string, error)
	Info(ctx context.Context, containerID string) (ContainerInfo, error)
}

// Placeholder values returned for containers nothing has been recorded for.
var (
	defaultContents = []string{"Продукт 1", "Продукт 2"}
	defaultInfo     = ContainerInfo{CreatedAt: "01.01.2022", Kind: "Обычный"}
)

// MemoryCatalog is the in-memory Catalog used until a real inventory store
// exists. Unknown ids resolve to the placeholder data, so every lookup
// succeeds.
type MemoryCatalog struct {
	mu       sync.RWMutex
	contents map[string][]string
	info     map[string]ContainerInfo
}

// NewMemoryCatalog constructs an empty catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		contents: make(map[string][]string),
		info:     make(map[string]ContainerInfo),
	}
}

// Put records contents and metadata for a container id.
func (c *MemoryCatalog) Put(containerID string, items []string, info ContainerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contents[containerID] = append([]string(nil), items...)
	c.info[containerID] = info
}

// Contents returns the recorded items for a container, or the placeholder
// listing when the id is unknown.
func (c *MemoryCatalog) Contents(_ context.Context, containerID string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if items, ok := c.contents[containerID]; ok {
		return append([]string(nil), items...), nil
	}
	return append([]string(nil), defaultContents...), nil
}

// Info returns the recorded metadata for a container, or the placeholder
// metadata when the id is unknown.
func (c *MemoryCatalog) Info(_ context.Context, containerID string) (ContainerInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if info, ok := c.info[containerID]; ok {
		return info, nil
	}
	return defaultInfo, nil
}

// SeedDemo preloads a couple of demo containers so the flow has something
// recognizable to show during development.
func SeedDemo(ctx context.Context, storage bootstrap.Storage) error {
	catalog, ok := storage.(*MemoryCatalog)
	if !ok {
		return fmt.Errorf("inventory: unexpected storage %T", storage)
	}
	catalog.Put("C-1", []string{"Молоко", "Яйца"}, ContainerInfo{CreatedAt: "01.01.2022", Kind: "Обычный"})
	catalog.Put("C-2", []string{"Гречка"}, ContainerInfo{CreatedAt: "15.03.2023", Kind: "Холодильный"})
	logger.Info(ctx, "inventory", "seed.demo",
		slog.String("status", "ok"),
		slog.Int("count", 2),
	)
	return nil
}
