package service

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestCheckoutSnapshotsPricesAndConsumesCart(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	user := env.seedUser(t, "u@example.com", false)
	p1 := env.seedProduct(t, "p1", "10.00", 100)
	p2 := env.seedProduct(t, "p2", "5.00", 100)

	cart, err := env.carts.Create(ctx)
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	if _, err := env.carts.AddItem(ctx, cart.ID, p1.ID, 2); err != nil {
		t.Fatalf("add p1 failed: %v", err)
	}
	if _, err := env.carts.AddItem(ctx, cart.ID, p2.ID, 1); err != nil {
		t.Fatalf("add p2 failed: %v", err)
	}

	order, err := env.orders.Checkout(ctx, CheckoutInput{CartID: cart.ID, UserID: user.ID})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("expected pending payment, got %s", order.PaymentStatus)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	prices := map[uint]string{}
	quantities := map[uint]int{}
	for _, item := range order.Items {
		prices[item.ProductID] = item.UnitPrice.String()
		quantities[item.ProductID] = item.Quantity
	}
	if prices[p1.ID] != "10.00" || quantities[p1.ID] != 2 {
		t.Fatalf("unexpected p1 line: price=%s qty=%d", prices[p1.ID], quantities[p1.ID])
	}
	if prices[p2.ID] != "5.00" || quantities[p2.ID] != 1 {
		t.Fatalf("unexpected p2 line: price=%s qty=%d", prices[p2.ID], quantities[p2.ID])
	}
	if order.TotalPrice.String() != "25.00" {
		t.Fatalf("unexpected order total: %s", order.TotalPrice)
	}

	customer, err := env.customers.Me(user.ID)
	if err != nil {
		t.Fatalf("load customer failed: %v", err)
	}
	if order.CustomerID != customer.ID {
		t.Fatalf("order owned by %d, want customer %d", order.CustomerID, customer.ID)
	}
	if customer.OrdersCount != 1 {
		t.Fatalf("expected orders_count 1, got %d", customer.OrdersCount)
	}

	if _, err := env.carts.Get(cart.ID); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected cart gone, got %v", err)
	}
	if n := env.countRows(t, &models.CartItem{}); n != 0 {
		t.Fatalf("expected cart items removed, got %d", n)
	}

	if _, err := env.products.UpdatePrice(p1.ID, decimal.RequireFromString("99.00")); err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	reloaded, err := env.orders.Get(Caller{UserID: user.ID}, order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	for _, item := range reloaded.Items {
		if item.ProductID == p1.ID && item.UnitPrice.String() != "10.00" {
			t.Fatalf("order item price followed product price: %s", item.UnitPrice)
		}
	}
	if reloaded.TotalPrice.String() != "25.00" {
		t.Fatalf("historical total changed: %s", reloaded.TotalPrice)
	}
}

func TestCheckoutTwiceFailsWithNotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	user := env.seedUser(t, "twice@example.com", false)
	product := env.seedProduct(t, "once", "3.00", 10)
	cart, _ := env.carts.Create(ctx)
	if _, err := env.carts.AddItem(ctx, cart.ID, product.ID, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := env.orders.Checkout(ctx, CheckoutInput{CartID: cart.ID, UserID: user.ID}); err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}

	_, err := env.orders.Checkout(ctx, CheckoutInput{CartID: cart.ID, UserID: user.ID})
	if !errors.Is(err, ErrCartNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on retry, got %v", err)
	}
	if n := env.countRows(t, &models.Order{}); n != 1 {
		t.Fatalf("expected exactly one order, got %d", n)
	}
}

func TestCheckoutUnknownCartCreatesNothing(t *testing.T) {
	env := newTestEnv(t, nil)
	user := env.seedUser(t, "ghost@example.com", false)

	_, err := env.orders.Checkout(context.Background(), CheckoutInput{
		CartID: "6b1f3f2e-0000-4000-8000-000000000000",
		UserID: user.ID,
	})
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected cart not found, got %v", err)
	}
	if n := env.countRows(t, &models.Order{}); n != 0 {
		t.Fatalf("expected no orders, got %d", n)
	}
	if n := env.countRows(t, &models.Customer{}); n != 0 {
		t.Fatalf("expected customer creation rolled back, got %d", n)
	}
}

func TestCheckoutStorageFailureRollsBackEverything(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	user := env.seedUser(t, "rollback@example.com", false)
	product := env.seedProduct(t, "fragile", "9.00", 10)

	cart, err := env.carts.Create(ctx)
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	if _, err := env.carts.AddItem(ctx, cart.ID, product.ID, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	// 订单行写入后、订单项写入时失败
	err = env.db.Callback().Create().Before("gorm:create").Register("test:fail_order_items", func(tx *gorm.DB) {
		if tx.Statement.Table == "order_items" {
			_ = tx.AddError(errors.New("disk full"))
		}
	})
	if err != nil {
		t.Fatalf("register callback failed: %v", err)
	}

	_, err = env.orders.Checkout(ctx, CheckoutInput{CartID: cart.ID, UserID: user.ID})
	if !errors.Is(err, ErrOrderCreateFailed) {
		t.Fatalf("expected order create failed, got %v", err)
	}
	if n := env.countRows(t, &models.Order{}); n != 0 {
		t.Fatalf("expected order rolled back, got %d", n)
	}
	if n := env.countRows(t, &models.OrderItem{}); n != 0 {
		t.Fatalf("expected order items rolled back, got %d", n)
	}
	if n := env.countRows(t, &models.Customer{}); n != 0 {
		t.Fatalf("expected customer rolled back, got %d", n)
	}
	kept, err := env.carts.Get(cart.ID)
	if err != nil {
		t.Fatalf("cart should survive a failed checkout: %v", err)
	}
	if len(kept.Items) != 1 || kept.Items[0].Quantity != 2 {
		t.Fatalf("cart items changed after rollback: %+v", kept.Items)
	}
}

func TestCheckoutEmptyCartIsConflictAndKeepsCart(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	user := env.seedUser(t, "empty@example.com", false)
	cart, _ := env.carts.Create(ctx)

	_, err := env.orders.Checkout(ctx, CheckoutInput{CartID: cart.ID, UserID: user.ID})
	if !errors.Is(err, ErrCartEmpty) || !errors.Is(err, ErrConflict) {
		t.Fatalf("expected empty cart conflict, got %v", err)
	}
	if _, err := env.carts.Get(cart.ID); err != nil {
		t.Fatalf("cart should remain usable, got %v", err)
	}
	if n := env.countRows(t, &models.Order{}); n != 0 {
		t.Fatalf("expected no orders, got %d", n)
	}
}

func TestCheckoutRejectsMalformedInput(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	if _, err := env.orders.Checkout(ctx, CheckoutInput{CartID: "not-a-uuid", UserID: 1}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected invalid cart id, got %v", err)
	}
	if _, err := env.orders.Checkout(ctx, CheckoutInput{CartID: "6b1f3f2e-0000-4000-8000-000000000000"}); !errors.Is(err, ErrUserRequired) {
		t.Fatalf("expected user required, got %v", err)
	}
}

func TestOrderListVisibility(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	alice := env.seedUser(t, "alice@example.com", false)
	bob := env.seedUser(t, "bob@example.com", false)
	staff := env.seedUser(t, "staff@example.com", true)
	product := env.seedProduct(t, "widget", "1.00", 10)

	for _, user := range []*models.User{alice, bob} {
		cart, _ := env.carts.Create(ctx)
		if _, err := env.carts.AddItem(ctx, cart.ID, product.ID, 1); err != nil {
			t.Fatalf("add item failed: %v", err)
		}
		if _, err := env.orders.Checkout(ctx, CheckoutInput{CartID: cart.ID, UserID: user.ID}); err != nil {
			t.Fatalf("checkout failed: %v", err)
		}
	}

	own, err := env.orders.List(Caller{UserID: alice.ID})
	if err != nil {
		t.Fatalf("list own orders failed: %v", err)
	}
	if len(own) != 1 {
		t.Fatalf("customer should see only own orders, got %d", len(own))
	}
	all, err := env.orders.List(Caller{UserID: staff.ID, SeeAll: true})
	if err != nil {
		t.Fatalf("list all orders failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("staff should see all orders, got %d", len(all))
	}

	bobOrders, _ := env.orders.List(Caller{UserID: bob.ID})
	if _, err := env.orders.Get(Caller{UserID: alice.ID}, bobOrders[0].ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("alice should not see bob's order, got %v", err)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	user := env.seedUser(t, "pay@example.com", false)
	product := env.seedProduct(t, "gadget", "2.00", 10)
	cart, _ := env.carts.Create(ctx)
	if _, err := env.carts.AddItem(ctx, cart.ID, product.ID, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	order, err := env.orders.Checkout(ctx, CheckoutInput{CartID: cart.ID, UserID: user.ID})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := env.orders.UpdatePaymentStatus(ctx, order.ID, "X"); !errors.Is(err, ErrPaymentStatusInvalid) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	updated, err := env.orders.UpdatePaymentStatus(ctx, order.ID, "c")
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.PaymentStatus != constants.PaymentStatusComplete {
		t.Fatalf("expected complete, got %s", updated.PaymentStatus)
	}
	if _, err := env.orders.UpdatePaymentStatus(ctx, 9999, "F"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected order not found, got %v", err)
	}
}
