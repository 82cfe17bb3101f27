package dto

import "time"

// CreateItemRequest entrada para crear un ítem (lote) bajo un producto.
type CreateItemRequest struct {
	Batch          string     `json:"batch" validate:"required,min=1,max=100"`
	Quantity       int        `json:"quantity" validate:"min=0"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Location       string     `json:"location" validate:"required,min=1,max=100"`
}

// UpdateItemRequest entrada para actualizar un ítem (parcial). La cantidad no
// se toca por acá: solo cambia vía movimientos.
type UpdateItemRequest struct {
	Batch          *string    `json:"batch" validate:"omitempty,min=1,max=100"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Location       *string    `json:"location" validate:"omitempty,min=1,max=100"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID             string     `json:"id"`
	Batch          string     `json:"batch"`
	Quantity       int        `json:"quantity"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Location       string     `json:"location"`
	Status         string     `json:"status"`
	ProductID      string     `json:"product_id"`
	ProductName    string     `json:"product_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
