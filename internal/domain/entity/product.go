package entity

import "time"

// Estados de producto. El borrado es lógico: un producto inactivo nunca se
// elimina de la base y queda oculto de las consultas por defecto.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un producto o SKU del inventario. El stock real vive en
// sus ítems (lotes); MinimumQuantity es el umbral de alerta por ítem.
type Product struct {
	ID              string    `gorm:"primaryKey;size:36"`
	SKU             string    `gorm:"uniqueIndex;size:100;not null"`
	Name            string    `gorm:"size:200;not null"`
	Status          string    `gorm:"size:20;not null"`
	MinimumQuantity int       `gorm:"not null;default:0"`
	CategoryID      string    `gorm:"size:36;index;not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time

	Category Category `gorm:"foreignKey:CategoryID"`
	Items    []Item   `gorm:"foreignKey:ProductID"`
}

// TableName nombre de tabla explícito.
func (Product) TableName() string { return "products" }

// QuantityTotal suma las cantidades de todos los ítems del producto.
func (p *Product) QuantityTotal() int {
	total := 0
	for _, it := range p.Items {
		total += it.Quantity
	}
	return total
}
