package main

import (
	"time"

	"github.com/livraria-next/internal/config"
	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/logger"
	"github.com/livraria-next/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

	// 添加卡组织
	brands := []models.Brand{
		{Name: "Visa"},
		{Name: "Mastercard"},
		{Name: "Elo"},
		{Name: "American Express"},
	}
	for _, brand := range brands {
		var existing models.Brand
		if err := models.DB.Where("name = ?", brand.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&brand).Error; err != nil {
				stdLog.Printf("Failed to create brand %s: %v", brand.Name, err)
			} else {
				stdLog.Printf("Created brand: %s", brand.Name)
			}
		} else {
			stdLog.Printf("Brand already exists: %s", brand.Name)
		}
	}

	// 添加图书
	books := []models.Book{
		{
			Title:            "Dom Casmurro",
			Author:           "Machado de Assis",
			Publisher:        "Companhia das Letras",
			Year:             2016,
			Edition:          3,
			ISBN:             "978-85-359-0831-2",
			Pages:            256,
			Synopsis:         "Bento Santiago recounts his youth and his corrosive jealousy of Capitu.",
			ProfitPercentage: models.NewMoneyFromDecimal(decimal.NewFromInt(40)),
			Status:           constants.BookStatusActive,
		},
		{
			Title:            "Grande Sertão: Veredas",
			Author:           "João Guimarães Rosa",
			Publisher:        "Nova Fronteira",
			Year:             2019,
			Edition:          1,
			ISBN:             "978-85-209-3932-5",
			Pages:            608,
			Synopsis:         "Riobaldo tells of his days as a jagunço in the Brazilian backlands.",
			ProfitPercentage: models.NewMoneyFromDecimal(decimal.NewFromInt(35)),
			Status:           constants.BookStatusActive,
		},
		{
			Title:            "A Hora da Estrela",
			Author:           "Clarice Lispector",
			Publisher:        "Rocco",
			Year:             2020,
			Edition:          2,
			ISBN:             "978-85-325-3078-6",
			Pages:            88,
			Synopsis:         "The brief life of Macabéa, a typist from Alagoas adrift in Rio.",
			ProfitPercentage: models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
			Status:           constants.BookStatusActive,
		},
		{
			Title:            "Memórias Póstumas de Brás Cubas",
			Author:           "Machado de Assis",
			Publisher:        "Penguin-Companhia",
			Year:             2014,
			Edition:          1,
			ISBN:             "978-85-63560-70-1",
			Pages:            368,
			Synopsis:         "A dead narrator reviews his unremarkable life with mordant irony.",
			ProfitPercentage: models.NewMoneyFromDecimal(decimal.NewFromInt(45)),
			Status:           constants.BookStatusInactive,
			StatusReason:     "awaiting reprint",
		},
	}

	for i := range books {
		var existing models.Book
		if err := models.DB.Where("isbn = ?", books[i].ISBN).First(&existing).Error; err != nil {
			if err := models.DB.Create(&books[i]).Error; err != nil {
				stdLog.Printf("Failed to create book %s: %v", books[i].ISBN, err)
				continue
			}
			stdLog.Printf("Created book: %s", books[i].Title)
		} else {
			books[i] = existing
			stdLog.Printf("Book already exists: %s", existing.Title)
		}

		// 每本书补足一批可售库存单元
		var available int64
		models.DB.Model(&models.InventoryUnit{}).
			Where("book_id = ? AND status = ?", books[i].ID, constants.InventoryStatusAvailable).
			Count(&available)
		for j := available; j < 5; j++ {
			unit := models.InventoryUnit{
				Code:      "BOK-" + uuid.NewString(),
				BookID:    books[i].ID,
				EntryDate: time.Now(),
				Supplier:  "Distribuidora Central",
				CostValue: models.NewMoneyFromDecimal(decimal.NewFromFloat(28.50)),
				Status:    constants.InventoryStatusAvailable,
			}
			if err := models.DB.Create(&unit).Error; err != nil {
				stdLog.Printf("Failed to create inventory unit for %s: %v", books[i].Title, err)
			}
		}
	}

	// 添加演示优惠券
	coupons := []models.Coupon{
		{
			Code:      "WELCOME10",
			Kind:      constants.CouponKindPercentage,
			Discount:  models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
			Status:    constants.CouponStatusAvailable,
			ExpiresAt: time.Now().AddDate(0, 3, 0),
		},
		{
			Code:      "LEITOR25",
			Kind:      constants.CouponKindFixedValue,
			Discount:  models.NewMoneyFromDecimal(decimal.NewFromInt(25)),
			Status:    constants.CouponStatusAvailable,
			ExpiresAt: time.Now().AddDate(0, 1, 0),
		},
	}
	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("Failed to create coupon %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("Created coupon: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("Coupon already exists: %s", coupon.Code)
		}
	}

	stdLog.Printf("Seed completed")
}
