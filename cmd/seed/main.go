package main

import (
	"github.com/jagannathit007/BSock-admin-sub004/internal/config"
	"github.com/jagannathit007/BSock-admin-sub004/internal/logger"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 成色等级
	grades := []models.Grade{
		{Title: "A+", Remark: "Like new, no visible marks", SortOrder: 1},
		{Title: "A", Remark: "Light signs of use", SortOrder: 2},
		{Title: "B", Remark: "Visible scratches, fully functional", SortOrder: 3},
		{Title: "C", Remark: "Heavy wear", SortOrder: 4},
	}
	for _, grade := range grades {
		grade.IsActive = true
		var existing models.Grade
		if err := models.DB.Where("title = ?", grade.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&grade).Error; err != nil {
				stdLog.Printf("Failed to create grade %s: %v", grade.Title, err)
			} else {
				stdLog.Printf("Created grade: %s", grade.Title)
			}
		} else {
			stdLog.Printf("Grade already exists: %s", grade.Title)
		}
	}

	// 供货商
	sellers := []models.Seller{
		{Name: "Kowloon Trading Co", Code: "KTC", Contact: "sales@ktc.example.com"},
		{Name: "Deira Wholesale FZE", Code: "DWF", Contact: "+971-50-000-0000"},
		{Name: "Mongkok Mobile Hub", Code: "MMH", Contact: "hub@mmh.example.com"},
	}
	for _, seller := range sellers {
		seller.IsActive = true
		var existing models.Seller
		if err := models.DB.Where("code = ?", seller.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&seller).Error; err != nil {
				stdLog.Printf("Failed to create seller %s: %v", seller.Code, err)
			} else {
				stdLog.Printf("Created seller: %s", seller.Code)
			}
		} else {
			stdLog.Printf("Seller already exists: %s", seller.Code)
		}
	}

	// 地点选项
	locations := []models.LocationOption{
		{Kind: models.LocationKindCurrent, Code: "HK", Name: "Hong Kong", SortOrder: 1},
		{Kind: models.LocationKindCurrent, Code: "DXB", Name: "Dubai", SortOrder: 2},
		{Kind: models.LocationKindCurrent, Code: "SZ", Name: "Shenzhen", SortOrder: 3},
		{Kind: models.LocationKindDelivery, Code: "HK", Name: "Hong Kong", SortOrder: 1},
		{Kind: models.LocationKindDelivery, Code: "DXB", Name: "Dubai", SortOrder: 2},
	}
	for _, option := range locations {
		var existing models.LocationOption
		if err := models.DB.Where("kind = ? AND code = ?", option.Kind, option.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&option).Error; err != nil {
				stdLog.Printf("Failed to create location %s/%s: %v", option.Kind, option.Code, err)
			} else {
				stdLog.Printf("Created location: %s/%s", option.Kind, option.Code)
			}
		} else {
			stdLog.Printf("Location already exists: %s/%s", option.Kind, option.Code)
		}
	}

	// 机型族与规格
	families := []models.SkuFamily{
		{
			Name:  "iPhone 15 Pro",
			Brand: "Apple",
			Variants: []models.SkuFamilyVariant{
				{SubModelName: "iPhone 15 Pro", Storage: "128GB", Colour: "Natural Titanium", DisplaySeq: 1},
				{SubModelName: "iPhone 15 Pro", Storage: "256GB", Colour: "Natural Titanium", DisplaySeq: 2},
				{SubModelName: "iPhone 15 Pro", Storage: "256GB", Colour: "Blue Titanium", DisplaySeq: 3},
				{SubModelName: "iPhone 15 Pro Max", Storage: "512GB", Colour: "Black Titanium", DisplaySeq: 4},
			},
		},
		{
			Name:  "Galaxy S24",
			Brand: "Samsung",
			Variants: []models.SkuFamilyVariant{
				{SubModelName: "Galaxy S24", Storage: "256GB", Colour: "Onyx Black", RAM: "8GB", DisplaySeq: 1},
				{SubModelName: "Galaxy S24 Ultra", Storage: "512GB", Colour: "Titanium Gray", RAM: "12GB", DisplaySeq: 2},
			},
		},
	}
	for _, family := range families {
		family.IsActive = true
		var existing models.SkuFamily
		if err := models.DB.Where("name = ?", family.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&family).Error; err != nil {
				stdLog.Printf("Failed to create sku family %s: %v", family.Name, err)
			} else {
				stdLog.Printf("Created sku family: %s (%d variants)", family.Name, len(family.Variants))
			}
		} else {
			stdLog.Printf("Sku family already exists: %s", family.Name)
		}
	}

	stdLog.Printf("Seed finished")
}
