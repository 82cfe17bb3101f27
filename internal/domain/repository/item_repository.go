package repository

import (
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ExpirationReportRow fila del reporte de vencimientos: ítem + producto +
// categoría ya unidos por la consulta.
type ExpirationReportRow struct {
	ItemID         string
	Batch          string
	Quantity       int
	Location       string
	ExpirationDate *time.Time
	ProductName    string
	ProductSKU     string
	CategoryName   string
}

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	ListAll() ([]*entity.Item, error)
	ListByProduct(productID string) ([]*entity.Item, error)
	// ListExpiringWithin lista ítems con vencimiento definido y anterior o
	// igual a hoy+days.
	ListExpiringWithin(days int) ([]*entity.Item, error)
	// ExpirationReport: cantidad > 0 y hoy < vencimiento <= hoy+days,
	// ordenado por vencimiento ascendente.
	ExpirationReport(days int) ([]*ExpirationReportRow, error)
	// ExpiredReport: cantidad > 0 y vencimiento < hoy, mismo orden.
	ExpiredReport() ([]*ExpirationReportRow, error)
	Update(item *entity.Item) error
}
