package dto

import "time"

// SupplierRequest body para crear/actualizar proveedores.
type SupplierRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	CNPJ    string `json:"cnpj" validate:"required,max=18"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SupplierListResponse listado paginado de proveedores.
type SupplierListResponse struct {
	Data       []SupplierResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}
