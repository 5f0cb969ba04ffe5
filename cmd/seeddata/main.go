package main

// Seeds a fresh postgres database with a small demo dataset: two suppliers,
// four products, two customers and the sequence counters positioned past the
// seeded codes. Safe to re-run: existing rows are left alone.

import (
	"os"
	"time"

	"showroom/internal/config"
	"showroom/internal/infra"
	"showroom/internal/model"
	"showroom/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func strPtr(s string) *string { return &s }

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.StorageBackend != config.StoragePostgres {
		log.Fatal().Msg("seeddata requires STORAGE_BACKEND=postgres")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	suppliers := []model.Supplier{
		{Code: "SUP-001", Name: "Mr. Rahim", CompanyName: "Fashion Hub Ltd.", Mobile: "01711-xxxxxx",
			Address: "Dhaka, Bangladesh", DueBalance: decimal.NewFromInt(15000)},
		{Code: "SUP-002", Name: "Ms. Karima", CompanyName: "Garments World", Mobile: "01812-xxxxxx",
			Address: "Chittagong, Bangladesh", DueBalance: decimal.Zero},
	}

	products := []model.Product{
		{Code: "PROD-001", Name: "Classic Blue Jeans", Category: "Pant", Size: "L", Color: "Blue",
			SupplierCode: strPtr("SUP-001"), PurchasePrice: decimal.NewFromInt(800),
			SellingPrice: decimal.NewFromInt(1500), OpeningStock: 50, CurrentStock: 35},
		{Code: "PROD-002", Name: "Silk Saree", Category: "Saree", Size: "Free Size", Color: "Red",
			SupplierCode: strPtr("SUP-002"), PurchasePrice: decimal.NewFromInt(2500),
			SellingPrice: decimal.NewFromInt(4000), OpeningStock: 20, CurrentStock: 12},
		{Code: "PROD-003", Name: "Cotton Polo Shirt", Category: "Shirt", Size: "M", Color: "White",
			SupplierCode: strPtr("SUP-001"), PurchasePrice: decimal.NewFromInt(500),
			SellingPrice: decimal.NewFromInt(950), OpeningStock: 100, CurrentStock: 80},
		{Code: "PROD-004", Name: "Graphic T-Shirt", Category: "T-Shirt", Size: "XL", Color: "Black",
			SupplierCode: strPtr("SUP-002"), PurchasePrice: decimal.NewFromInt(300),
			SellingPrice: decimal.NewFromInt(600), OpeningStock: 120, CurrentStock: 105},
	}

	customers := []model.Customer{
		{Code: "CUST-001", Name: "Anisul Islam", Phone: "01911-xxxxxx", Email: "anisul@email.com",
			Address: "Banani, Dhaka", LoyaltyTier: model.TierBronze, LoyaltyPoints: 120,
			TotalPurchases: decimal.NewFromInt(12000)},
		{Code: "CUST-002", Name: "Fatima Begum", Phone: "01512-xxxxxx", Email: "fatima@email.com",
			Address: "Gulshan, Dhaka", LoyaltyTier: model.TierSilver, LoyaltyPoints: 250,
			TotalPurchases: decimal.NewFromInt(25000)},
	}

	// Sequence counters sit just past the seeded codes so the next create
	// mints SUP-003 / PROD-005 / CUST-003 / INV-0001.
	sequences := []model.Sequence{
		{Name: repository.SeqSupplier, Value: 2},
		{Name: repository.SeqProduct, Value: 4},
		{Name: repository.SeqCustomer, Value: 2},
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		onConflictSkip := clause.OnConflict{DoNothing: true}
		if err := tx.Clauses(onConflictSkip).Create(&suppliers).Error; err != nil {
			return err
		}
		if err := tx.Clauses(onConflictSkip).Create(&products).Error; err != nil {
			return err
		}
		if err := tx.Clauses(onConflictSkip).Create(&customers).Error; err != nil {
			return err
		}
		return tx.Clauses(onConflictSkip).Create(&sequences).Error
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().
		Int("suppliers", len(suppliers)).
		Int("products", len(products)).
		Int("customers", len(customers)).
		Msg("demo data seeded")
}
