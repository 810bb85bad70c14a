package repository

import (
	"testing"

	"github.com/storefront-api/internal/models"
)

func TestCartMergeItemAccumulatesQuantity(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	collection := seedCollection(t, db, "Beverages")
	product := seedProduct(t, db, collection.ID, "cola", "2.50", 100)
	cart := seedCart(t, db, "8f8e2d5a-0b54-4d0a-9d1a-2f64ce0f6a11")

	first, err := repo.MergeItem(cart.ID, product.ID, 2)
	if err != nil {
		t.Fatalf("first merge failed: %v", err)
	}
	second, err := repo.MergeItem(cart.ID, product.ID, 3)
	if err != nil {
		t.Fatalf("second merge failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same row, got %d and %d", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", second.Quantity)
	}
	if second.Product == nil || second.Product.ID != product.ID {
		t.Fatalf("expected product preloaded, got %+v", second.Product)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row, got %d", count)
	}
}

func TestCartDeleteRemovesItems(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	collection := seedCollection(t, db, "Snacks")
	product := seedProduct(t, db, collection.ID, "chips", "1.00", 10)
	cart := seedCart(t, db, "0d1b7f0c-5d07-4c59-9f38-0b2e4b8de4c1")
	if _, err := repo.MergeItem(cart.ID, product.ID, 1); err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	if err := repo.Delete(cart.ID); err != nil {
		t.Fatalf("delete cart failed: %v", err)
	}
	got, err := repo.GetByID(cart.ID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected cart gone, got %+v", got)
	}
	items, err := repo.ListItems(cart.ID)
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected items gone, got %d", len(items))
	}
}

func TestCartListItemsForCheckoutAttachesProducts(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	collection := seedCollection(t, db, "Bakery")
	p1 := seedProduct(t, db, collection.ID, "bread", "10.00", 5)
	p2 := seedProduct(t, db, collection.ID, "bagel", "5.00", 5)
	cart := seedCart(t, db, "4e0c3c4b-9b64-4a46-8d6f-6f1c0ad2b7aa")
	if _, err := repo.MergeItem(cart.ID, p1.ID, 2); err != nil {
		t.Fatalf("merge p1 failed: %v", err)
	}
	if _, err := repo.MergeItem(cart.ID, p2.ID, 1); err != nil {
		t.Fatalf("merge p2 failed: %v", err)
	}

	items, err := repo.ListItemsForCheckout(cart.ID)
	if err != nil {
		t.Fatalf("list for checkout failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Product == nil {
			t.Fatalf("item %d missing product", item.ID)
		}
	}
	if items[0].Product.UnitPrice.String() != "10.00" {
		t.Fatalf("unexpected price: %s", items[0].Product.UnitPrice)
	}
}

func TestCartUpdateAndDeleteItemScopedToCart(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	collection := seedCollection(t, db, "Dairy")
	product := seedProduct(t, db, collection.ID, "milk", "1.20", 5)
	cart := seedCart(t, db, "c6f0f1d2-4b8a-4d2e-9a57-8d6d13c1e001")
	other := seedCart(t, db, "c6f0f1d2-4b8a-4d2e-9a57-8d6d13c1e002")
	item, err := repo.MergeItem(cart.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	affected, err := repo.UpdateItemQuantity(other.ID, item.ID, 9)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("update through another cart should not match, affected=%d", affected)
	}
	affected, err = repo.DeleteItem(cart.ID, item.ID)
	if err != nil || affected != 1 {
		t.Fatalf("delete item failed: affected=%d err=%v", affected, err)
	}
}
