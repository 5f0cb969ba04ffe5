package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"showroom/internal/dto"
	"showroom/internal/model"
	"showroom/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedStoreProduct(s *Store, code string, stock int) {
	s.products[code] = model.Product{
		Code:          code,
		Name:          "Test " + code,
		Category:      "Shirt",
		PurchasePrice: decimal.NewFromInt(500),
		SellingPrice:  decimal.NewFromInt(950),
		OpeningStock:  stock,
		CurrentStock:  stock,
	}
}

func TestAtomically_CommitKeepsWrites(t *testing.T) {
	store := NewStore()
	products := NewProductRepository(store)

	err := store.Atomically(context.Background(), func(tx *gorm.DB) error {
		return products.CreateTx(tx, &model.Product{Code: "PROD-001", Name: "Jeans"})
	})
	require.NoError(t, err)

	p, err := products.FindByCode(context.Background(), "PROD-001")
	require.NoError(t, err)
	assert.Equal(t, "Jeans", p.Name)
}

func TestAtomically_ErrorRollsBackEverything(t *testing.T) {
	store := NewStore()
	products := NewProductRepository(store)
	movements := NewStockMovementRepository(store)
	seedStoreProduct(store, "PROD-001", 10)

	boom := errors.New("boom")
	err := store.Atomically(context.Background(), func(tx *gorm.DB) error {
		if err := products.UpdateStockTx(tx, "PROD-001", -4); err != nil {
			return err
		}
		if err := movements.CreateTx(tx, &model.StockMovement{
			ProductCode: "PROD-001", Type: model.MovementSale, Quantity: 4, UpdatedStock: 6,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// both the stock change and the movement were rolled back
	p, err := products.FindByCode(context.Background(), "PROD-001")
	require.NoError(t, err)
	assert.Equal(t, 10, p.CurrentStock)

	listed, total, err := movements.List(context.Background(), dto.MovementFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, listed)
}

func TestStockMovementCreate_StampsDate(t *testing.T) {
	store := NewStore()
	movements := NewStockMovementRepository(store)

	err := store.Atomically(context.Background(), func(tx *gorm.DB) error {
		return movements.CreateTx(tx, &model.StockMovement{
			ProductCode: "PROD-001", Type: model.MovementPurchase, Quantity: 5, UpdatedStock: 5,
		})
	})
	require.NoError(t, err)

	listed, _, err := movements.List(context.Background(), dto.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].CreatedAt.IsZero())
}

func TestAtomically_RollbackRestoresSequence(t *testing.T) {
	store := NewStore()
	sales := NewSaleRepository(store)

	boom := errors.New("boom")
	_ = store.Atomically(context.Background(), func(tx *gorm.DB) error {
		if _, err := sales.NextSequence(context.Background(), tx); err != nil {
			return err
		}
		return boom
	})

	var got int
	err := store.Atomically(context.Background(), func(tx *gorm.DB) error {
		n, err := sales.NextSequence(context.Background(), tx)
		got = n
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got, "a failed transaction must not burn a number")
}

func TestSequences_IndependentPerName(t *testing.T) {
	store := NewStore()
	products := NewProductRepository(store)
	customers := NewCustomerRepository(store)

	ctx := context.Background()
	err := store.Atomically(ctx, func(tx *gorm.DB) error {
		for i := 1; i <= 3; i++ {
			n, err := products.NextSequence(ctx, tx)
			if err != nil {
				return err
			}
			assert.Equal(t, i, n)
		}
		n, err := customers.NextSequence(ctx, tx)
		assert.Equal(t, 1, n)
		return err
	})
	require.NoError(t, err)
}

func TestProductDelete_MissingLookupsFail(t *testing.T) {
	store := NewStore()
	products := NewProductRepository(store)
	seedStoreProduct(store, "PROD-001", 5)

	require.NoError(t, products.Delete(context.Background(), "PROD-001"))

	_, err := products.FindByCode(context.Background(), "PROD-001")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSaleList_NewestFirst(t *testing.T) {
	store := NewStore()
	sales := NewSaleRepository(store)

	ctx := context.Background()
	err := store.Atomically(ctx, func(tx *gorm.DB) error {
		for _, inv := range []string{"INV-0001", "INV-0002", "INV-0003"} {
			if err := sales.CreateTx(tx, &model.Sale{InvoiceNo: inv, PaymentStatus: model.StatusPaid}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	listed, total, err := sales.List(ctx, dto.SaleFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, listed, 3)
	assert.Equal(t, "INV-0003", listed[0].InvoiceNo)
	assert.Equal(t, "INV-0001", listed[2].InvoiceNo)
}

func TestSettings_SurviveRoundTrip(t *testing.T) {
	store := NewStore()
	settings := NewSettingsRepository(store)

	ctx := context.Background()
	current, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Your Brand Name", current.CompanyName)

	current.CompanyName = "Stitch & Thread"
	require.NoError(t, settings.Save(ctx, current))

	reloaded, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Stitch & Thread", reloaded.CompanyName)
}

func TestConcurrentRestocks_NoLostUpdates(t *testing.T) {
	store := NewStore()
	products := NewProductRepository(store)
	seedStoreProduct(store, "PROD-001", 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Atomically(context.Background(), func(tx *gorm.DB) error {
				return products.UpdateStockTx(tx, "PROD-001", 1)
			})
		}()
	}
	wg.Wait()

	p, err := products.FindByCode(context.Background(), "PROD-001")
	require.NoError(t, err)
	assert.Equal(t, 50, p.CurrentStock)
}

// Interface checks live here rather than in the implementation files.
var (
	_ repository.Transactor = (*Store)(nil)
)
