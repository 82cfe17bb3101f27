package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de stock.
type RegisterMovementRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// MovementResponse salida de una entrada del ledger.
type MovementResponse struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	Type             string    `json:"type"`
	QuantityMoved    int       `json:"quantity_moved"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	ItemID           string    `json:"item_id"`
	ProductName      string    `json:"product_name,omitempty"`
	UserID           string    `json:"user_id"`
	UserName         string    `json:"user_name,omitempty"`
}
