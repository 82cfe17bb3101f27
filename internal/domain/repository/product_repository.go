package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	ListByStatus(status string) ([]*entity.Product, error)
	// ListLowStock devuelve los productos activos cuya suma de cantidades de
	// ítems está por debajo de su MinimumQuantity.
	ListLowStock() ([]*entity.Product, error)
	Update(product *entity.Product) error
}
