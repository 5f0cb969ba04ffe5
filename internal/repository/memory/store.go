// Package memory implements the repository contracts on plain in-process
// maps. It is the default backend: the whole ledger lives in one Store whose
// write lock serializes composite operations, and whose snapshot/restore
// makes them atomic — a transaction body that fails mid-way leaves no trace.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"showroom/internal/model"

	"gorm.io/gorm"
)

// Store owns every collection. All repositories returned by its constructors
// share it, so one lock and one snapshot cover the whole state.
type Store struct {
	mu sync.RWMutex

	products  map[string]model.Product
	customers map[string]model.Customer
	suppliers map[string]model.Supplier
	sales     map[string]model.Sale
	saleOrder []string // invoice numbers in insertion order
	movements []model.StockMovement
	settings  model.Settings
	seq       map[string]int
}

func NewStore() *Store {
	return &Store{
		products:  make(map[string]model.Product),
		customers: make(map[string]model.Customer),
		suppliers: make(map[string]model.Supplier),
		sales:     make(map[string]model.Sale),
		settings:  model.DefaultSettings(),
		seq:       make(map[string]int),
	}
}

type snapshot struct {
	products  map[string]model.Product
	customers map[string]model.Customer
	suppliers map[string]model.Supplier
	sales     map[string]model.Sale
	saleOrder []string
	movements []model.StockMovement
	settings  model.Settings
	seq       map[string]int
}

// snap copies every collection. Entries are value types and transaction
// bodies never mutate slices reachable from an existing entry, so a shallow
// per-collection copy is a correct restore point.
func (s *Store) snap() snapshot {
	return snapshot{
		products:  maps.Clone(s.products),
		customers: maps.Clone(s.customers),
		suppliers: maps.Clone(s.suppliers),
		sales:     maps.Clone(s.sales),
		saleOrder: slices.Clone(s.saleOrder),
		movements: slices.Clone(s.movements),
		settings:  s.settings,
		seq:       maps.Clone(s.seq),
	}
}

func (s *Store) restore(sn snapshot) {
	s.products = sn.products
	s.customers = sn.customers
	s.suppliers = sn.suppliers
	s.sales = sn.sales
	s.saleOrder = sn.saleOrder
	s.movements = sn.movements
	s.settings = sn.settings
	s.seq = sn.seq
}

// Atomically satisfies repository.Transactor. fn receives a nil *gorm.DB:
// the Tx repository methods treat nil as "the caller already holds the store
// lock" and touch the maps directly.
func (s *Store) Atomically(_ context.Context, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sn := s.snap()
	if err := fn(nil); err != nil {
		s.restore(sn)
		return err
	}
	return nil
}

// nextSeq increments the named counter. Caller must hold the write lock.
func (s *Store) nextSeq(name string) int {
	s.seq[name]++
	return s.seq[name]
}
