package entity

import "time"

// Supplier representa un proveedor del catálogo.
type Supplier struct {
	ID        int64
	Name      string
	CNPJ      string // identificación fiscal del proveedor
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
