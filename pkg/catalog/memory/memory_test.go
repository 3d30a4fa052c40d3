package memory

import (
	"context"
	"testing"

	"storefront/pkg/catalog"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	price := int64(2000)
	repo := New([]catalog.Item{
		{ID: "1", Title: "Mute-the-cat button", Category: catalog.CategoryButton, Price: &price},
		{ID: "2", Title: "Mom-the-timer", Category: catalog.CategorySoftSkill},
	})

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 products, got %d", len(items))
	}

	got, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Mute-the-cat button" {
		t.Fatalf("unexpected title: %s", got.Title)
	}

	if _, err := repo.Get(ctx, "missing"); err != catalog.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
