package entity

import "time"

// Estados de ítem. available/alert/out_of_stock se derivan de la cantidad y
// del mínimo del producto; inactive es terminal y solo se alcanza por
// desactivación explícita.
const (
	ItemStatusAvailable  = "available"
	ItemStatusAlert      = "alert"
	ItemStatusOutOfStock = "out_of_stock"
	ItemStatusInactive   = "inactive"
)

// Item representa un lote de un producto: una cantidad con su propia fecha de
// vencimiento y ubicación física. Status se persiste para consulta pero se
// recalcula con CalculateItemStatus en cada mutación de cantidad.
type Item struct {
	ID             string     `gorm:"primaryKey;size:36"`
	Batch          string     `gorm:"size:100;not null"`
	Quantity       int        `gorm:"not null;default:0"`
	ExpirationDate *time.Time `gorm:"index"`
	Location       string     `gorm:"size:100"`
	Status         string     `gorm:"size:20;not null"`
	ProductID      string     `gorm:"size:36;index;not null"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time

	Product   Product    `gorm:"foreignKey:ProductID"`
	Movements []Movement `gorm:"foreignKey:ItemID"`
}

// TableName nombre de tabla explícito.
func (Item) TableName() string { return "items" }

// CalculateItemStatus deriva el estado de un ítem activo a partir de su
// cantidad y del umbral mínimo del producto. Función pura.
func CalculateItemStatus(quantity, minimumQuantity int) string {
	if quantity == 0 {
		return ItemStatusOutOfStock
	}
	if quantity <= minimumQuantity {
		return ItemStatusAlert
	}
	return ItemStatusAvailable
}
