package main

import (
	"context"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// Fixed storefront taxonomy. Categories are seeded, never managed at runtime.
var categories = []model.Category{
	{Slug: "t-shirts", Name: "T-Shirts", Description: "Explore our wide range of comfortable and stylish t-shirts for every occasion.", Icon: "👕"},
	{Slug: "hoodies", Name: "Hoodies", Description: "Stay warm and cozy with our collection of premium hoodies in various designs.", Icon: "🧥"},
	{Slug: "caps", Name: "Caps", Description: "Top off your look with our fashionable and functional caps and hats.", Icon: "🧢"},
	{Slug: "accessories", Name: "Accessories", Description: "Find the perfect accessories to complement your style, from bags to belts.", Icon: "👜"},
	{Slug: "footwear", Name: "Footwear", Description: "Step out in style with our collection of trendy and comfortable shoes.", Icon: "👟"},
	{Slug: "outerwear", Name: "Outerwear", Description: "Brave the elements with our selection of jackets, coats, and vests.", Icon: "🧥"},
}

// Store defaults. All values are strings, including booleans ("0"/"1").
var defaultSettings = map[string]string{
	"store_name":                 "Storefront",
	"store_email":                "store@example.com",
	"theme_color":                "#2563eb",
	"maintenance_mode":           "0",
	"registration_email_enabled": "1",
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Setting{},
		&model.ContactMessage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	categoryRepo := repository.NewCategoryRepository(gormDB)
	settingRepo := repository.NewSettingRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	for i := range categories {
		if err := categoryRepo.Upsert(ctx, &categories[i]); err != nil {
			log.Fatalf("seed category %s: %v", categories[i].Slug, err)
		}
	}
	log.Printf("Seeded %d categories", len(categories))

	settings := make([]model.Setting, 0, len(defaultSettings))
	for key, value := range defaultSettings {
		settings = append(settings, model.Setting{Key: key, Value: value})
	}
	if err := settingRepo.UpsertAll(ctx, settings); err != nil {
		log.Fatalf("seed settings: %v", err)
	}
	log.Printf("Seeded %d settings", len(settings))

	seedAdmin(ctx, userRepo)
	seedProducts(ctx, gormDB, productRepo)

	log.Println("Seed complete")
}

// seedAdmin creates the administrator account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set. This is the only path that sets is_admin.
func seedAdmin(ctx context.Context, userRepo repository.UserRepository) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin %s already exists", email)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("check admin: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}

	admin := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         "Store Administrator",
		IsAdmin:      true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("Created admin %s", email)
}

func seedProducts(ctx context.Context, gormDB *gorm.DB, productRepo repository.ProductRepository) {
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("count products: %v", err)
	}
	if count > 0 {
		log.Printf("Products already present (%d), skipping samples", count)
		return
	}

	var tshirts model.Category
	if err := gormDB.Where("slug = ?", "t-shirts").First(&tshirts).Error; err != nil {
		log.Fatalf("find t-shirts category: %v", err)
	}

	samples := []model.Product{
		{Name: "Classic Tee", Description: "Plain cotton t-shirt.", Price: decimal.NewFromFloat(19.99), Stock: 100, CategoryID: &tshirts.ID},
		{Name: "Logo Tee", Description: "T-shirt with the store logo.", Price: decimal.NewFromFloat(24.99), Stock: 50, CategoryID: &tshirts.ID},
	}
	for i := range samples {
		if err := productRepo.Create(ctx, &samples[i]); err != nil {
			log.Fatalf("seed product %s: %v", samples[i].Name, err)
		}
	}
	log.Printf("Seeded %d sample products", len(samples))
}
