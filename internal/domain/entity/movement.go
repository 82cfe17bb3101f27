package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste
)

// Movement es una entrada del ledger de stock: registra el antes y el después
// de la cantidad de un ítem. Append-only; nunca se actualiza ni se borra.
type Movement struct {
	ID               string    `gorm:"primaryKey;size:36"`
	Date             time.Time `gorm:"index;not null"`
	Type             string    `gorm:"size:20;not null"`
	QuantityMoved    int       `gorm:"not null"`
	PreviousQuantity int       `gorm:"not null"`
	NewQuantity      int       `gorm:"not null"`
	ItemID           string    `gorm:"size:36;index;not null"`
	UserID           string    `gorm:"size:36;index;not null"`

	Item Item `gorm:"foreignKey:ItemID"`
	User User `gorm:"foreignKey:UserID"`
}

// TableName nombre de tabla explícito.
func (Movement) TableName() string { return "movements" }
