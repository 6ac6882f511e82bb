package inventory

import (
	"context"
	"testing"
)

func TestMemoryCatalogFallsBackForUnknownIDs(t *testing.T) {
	c := NewMemoryCatalog()
	ctx := context.Background()

	items, err := c.Contents(ctx, "нет-такого")
	if err != nil {
		t.Fatalf("contents: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("unknown container must yield placeholder contents")
	}

	info, err := c.Info(ctx, "нет-такого")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.CreatedAt == "" || info.Kind == "" {
		t.Fatalf("placeholder info incomplete: %+v", info)
	}
}

func TestMemoryCatalogReturnsSeededData(t *testing.T) {
	c := NewMemoryCatalog()
	ctx := context.Background()

	c.Put("C-1", []string{"Молоко"}, ContainerInfo{CreatedAt: "02.03.2024", Kind: "Холодильный"})

	items, err := c.Contents(ctx, "C-1")
	if err != nil {
		t.Fatalf("contents: %v", err)
	}
	if len(items) != 1 || items[0] != "Молоко" {
		t.Fatalf("contents = %v", items)
	}

	info, err := c.Info(ctx, "C-1")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.Kind != "Холодильный" {
		t.Fatalf("info = %+v", info)
	}
}

func TestSeedDemoRequiresMemoryCatalog(t *testing.T) {
	if err := SeedDemo(context.Background(), struct{}{}); err == nil {
		t.Fatal("seeding a foreign storage must fail")
	}
	if err := SeedDemo(context.Background(), NewMemoryCatalog()); err != nil {
		t.Fatalf("seed demo: %v", err)
	}
}
