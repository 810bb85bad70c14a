package main

import (
	"github.com/storefront-api/internal/config"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/models"
)

type seedProduct struct {
	Slug        string
	Title       string
	Description string
	Price       string
	Inventory   int
}

type seedCollection struct {
	Title    string
	Products []seedProduct
}

var seedData = []seedCollection{
	{
		Title: "Beauty",
		Products: []seedProduct{
			{Slug: "face-cream", Title: "Face Cream", Description: "Daily moisturizer", Price: "18.50", Inventory: 120},
			{Slug: "lip-balm", Title: "Lip Balm", Description: "Shea butter balm", Price: "4.20", Inventory: 8},
		},
	},
	{
		Title: "Cleaning",
		Products: []seedProduct{
			{Slug: "dish-soap", Title: "Dish Soap", Description: "Lemon scented", Price: "3.75", Inventory: 65},
			{Slug: "sponge-pack", Title: "Sponge Pack", Description: "Pack of six", Price: "5.10", Inventory: 240},
		},
	},
	{
		Title: "Stationery",
		Products: []seedProduct{
			{Slug: "notebook-a5", Title: "Notebook A5", Description: "Dotted pages", Price: "7.90", Inventory: 35},
			{Slug: "gel-pen", Title: "Gel Pen", Description: "0.5mm black", Price: "1.25", Inventory: 500},
		},
	},
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	log := logger.S()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.LogLevel, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		log.Fatalw("seed_database_connect_failed", "error", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		log.Fatalw("seed_database_migrate_failed", "error", err)
	}

	for _, item := range seedData {
		var collection models.Collection
		if err := models.DB.Where("title = ?", item.Title).FirstOrCreate(&collection, models.Collection{Title: item.Title}).Error; err != nil {
			log.Errorw("seed_collection_failed", "title", item.Title, "error", err)
			continue
		}
		for _, p := range item.Products {
			var existing int64
			if err := models.DB.Model(&models.Product{}).Where("slug = ?", p.Slug).Count(&existing).Error; err != nil {
				log.Errorw("seed_product_lookup_failed", "slug", p.Slug, "error", err)
				continue
			}
			if existing > 0 {
				log.Infow("seed_product_exists", "slug", p.Slug)
				continue
			}
			price, err := models.ParseMoney(p.Price)
			if err != nil {
				log.Errorw("seed_product_price_invalid", "slug", p.Slug, "price", p.Price, "error", err)
				continue
			}
			product := models.Product{
				CollectionID: collection.ID,
				Title:        p.Title,
				Slug:         p.Slug,
				Description:  p.Description,
				UnitPrice:    price,
				Inventory:    p.Inventory,
			}
			if err := models.DB.Create(&product).Error; err != nil {
				log.Errorw("seed_product_failed", "slug", p.Slug, "error", err)
				continue
			}
			log.Infow("seed_product_created", "slug", p.Slug, "collection", item.Title)
		}
	}

	if err := models.InitDefaultStaff(cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
		log.Warnw("seed_default_staff_failed", "error", err)
	}
	log.Infow("seed_completed", "collections", len(seedData))
}
