package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/storefront-api/internal/models"

	"github.com/shopspring/decimal"
)

func TestAddItemMergesDuplicateProduct(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	product := env.seedProduct(t, "tea", "4.00", 50)
	cart, err := env.carts.Create(ctx)
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}

	if _, err := env.carts.AddItem(ctx, cart.ID, product.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	item, err := env.carts.AddItem(ctx, cart.ID, product.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", item.Quantity)
	}
	if item.TotalPrice.String() != "20.00" {
		t.Fatalf("unexpected line total: %s", item.TotalPrice)
	}
	if n := env.countRows(t, &models.CartItem{}); n != 1 {
		t.Fatalf("expected one cart item row, got %d", n)
	}
}

func TestAddItemConcurrentAddsStaySingleRow(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	product := env.seedProduct(t, "coffee", "6.00", 50)
	cart, _ := env.carts.Create(ctx)

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := env.carts.AddItem(ctx, cart.ID, product.ID, 1); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 4
	for range errs {
		succeeded--
	}
	var rows []models.CartItem
	if err := env.db.Where("cart_id = ?", cart.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load cart items failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row after concurrent adds, got %d", len(rows))
	}
	if rows[0].Quantity != succeeded {
		t.Fatalf("expected quantity %d, got %d", succeeded, rows[0].Quantity)
	}
}

func TestAddItemValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	product := env.seedProduct(t, "juice", "3.00", 50)
	cart, _ := env.carts.Create(ctx)

	if _, err := env.carts.AddItem(ctx, cart.ID, product.ID, 0); !errors.Is(err, ErrCartItemQuantityInvalid) {
		t.Fatalf("expected quantity invalid, got %v", err)
	}
	if _, err := env.carts.AddItem(ctx, "bogus", product.ID, 1); !errors.Is(err, ErrCartIDInvalid) {
		t.Fatalf("expected malformed cart id, got %v", err)
	}
	if _, err := env.carts.AddItem(ctx, "6b1f3f2e-0000-4000-8000-000000000001", product.ID, 1); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected cart not found, got %v", err)
	}
	if _, err := env.carts.AddItem(ctx, cart.ID, 424242, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found, got %v", err)
	}
	if n := env.countRows(t, &models.CartItem{}); n != 0 {
		t.Fatalf("rejected adds must not write, got %d rows", n)
	}
}

func TestCartTotalsFollowLivePrices(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	p1 := env.seedProduct(t, "bread", "10.00", 50)
	p2 := env.seedProduct(t, "butter", "5.00", 50)
	cart, _ := env.carts.Create(ctx)
	if _, err := env.carts.AddItem(ctx, cart.ID, p1.ID, 2); err != nil {
		t.Fatalf("add p1 failed: %v", err)
	}
	if _, err := env.carts.AddItem(ctx, cart.ID, p2.ID, 1); err != nil {
		t.Fatalf("add p2 failed: %v", err)
	}

	detail, err := env.carts.Get(cart.ID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if detail.TotalCartValue.String() != "25.00" {
		t.Fatalf("unexpected cart total: %s", detail.TotalCartValue)
	}

	if _, err := env.products.UpdatePrice(p1.ID, decimal.RequireFromString("12.00")); err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	detail, err = env.carts.Get(cart.ID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if detail.TotalCartValue.String() != "29.00" {
		t.Fatalf("cart total should follow live price, got %s", detail.TotalCartValue)
	}
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	product := env.seedProduct(t, "jam", "2.00", 50)
	cart, _ := env.carts.Create(ctx)
	item, err := env.carts.AddItem(ctx, cart.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if _, err := env.carts.UpdateItemQuantity(cart.ID, item.ID, 0); !errors.Is(err, ErrCartItemQuantityInvalid) {
		t.Fatalf("expected quantity invalid, got %v", err)
	}
	updated, err := env.carts.UpdateItemQuantity(cart.ID, item.ID, 7)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if updated.Quantity != 7 || updated.TotalPrice.String() != "14.00" {
		t.Fatalf("unexpected updated item: qty=%d total=%s", updated.Quantity, updated.TotalPrice)
	}
	if err := env.carts.RemoveItem(cart.ID, item.ID); err != nil {
		t.Fatalf("remove item failed: %v", err)
	}
	if err := env.carts.RemoveItem(cart.ID, item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected item not found on second remove, got %v", err)
	}
}

func TestDeleteCart(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	cart, _ := env.carts.Create(ctx)
	if err := env.carts.Delete(ctx, cart.ID); err != nil {
		t.Fatalf("delete cart failed: %v", err)
	}
	if err := env.carts.Delete(ctx, cart.ID); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
