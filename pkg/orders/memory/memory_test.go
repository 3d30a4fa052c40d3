package memory

import (
	"context"
	"testing"

	"storefront/pkg/orders"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	o := orders.Order{
		ID:      "1",
		Payment: "card",
		Email:   "dev@example.com",
		Phone:   "+1 555 0100",
		Address: "Elm Street 13",
		Total:   2200,
		Items:   []string{"a", "b"},
	}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Total != 2200 || len(got.Items) != 2 {
		t.Fatalf("unexpected order: %+v", got)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if _, err := repo.Get(ctx, "missing"); err != orders.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
