package dto

import "time"

// CreateProductRequest entrada para crear un producto, opcionalmente con sus
// ítems iniciales en cascada.
type CreateProductRequest struct {
	SKU             string              `json:"sku" validate:"required,min=1,max=100"`
	Name            string              `json:"name" validate:"required,min=1,max=200"`
	CategoryID      string              `json:"category_id" validate:"required"`
	MinimumQuantity int                 `json:"minimum_quantity" validate:"min=0"`
	Items           []CreateItemRequest `json:"items" validate:"omitempty,dive"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial).
type UpdateProductRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID      *string `json:"category_id"`
	MinimumQuantity *int    `json:"minimum_quantity" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto con su stock total sumado.
type ProductResponse struct {
	ID              string    `json:"id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	MinimumQuantity int       `json:"minimum_quantity"`
	CategoryID      string    `json:"category_id"`
	QuantityTotal   int       `json:"quantity_total"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
