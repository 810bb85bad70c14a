package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func seedCollection(t *testing.T, db *gorm.DB, title string) *models.Collection {
	t.Helper()
	collection := &models.Collection{Title: title}
	if err := db.Create(collection).Error; err != nil {
		t.Fatalf("create collection failed: %v", err)
	}
	return collection
}

func seedProduct(t *testing.T, db *gorm.DB, collectionID uint, slug, price string, inventory int) *models.Product {
	t.Helper()
	product := &models.Product{
		CollectionID: collectionID,
		Title:        slug,
		Slug:         slug,
		UnitPrice:    models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		Inventory:    inventory,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func seedCart(t *testing.T, db *gorm.DB, id string) *models.Cart {
	t.Helper()
	cart := &models.Cart{ID: id}
	if err := db.Create(cart).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	return cart
}

func seedOrder(t *testing.T, db *gorm.DB, email string) *models.Order {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	customer := models.Customer{UserID: user.ID, Membership: constants.MembershipBronze}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	order := models.Order{CustomerID: customer.ID, PaymentStatus: constants.PaymentStatusPending}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return &order
}
