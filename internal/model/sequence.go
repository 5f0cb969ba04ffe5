package model

// Sequence backs the monotonic business-code counters (PROD-, CUST-, SUP-,
// INV-) on the persistent backend. Counters only ever grow: deleting a
// product never frees its number, so codes and invoice numbers stay unique
// for the store's lifetime.
type Sequence struct {
	Name  string `gorm:"primaryKey;size:20"`
	Value int    `gorm:"not null"`
}
