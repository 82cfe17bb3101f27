package postgres

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre GORM.
type ItemRepo struct {
	db *gorm.DB
}

// NewItemRepository construye el adaptador de persistencia para ítems.
func NewItemRepository(db *gorm.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(item *entity.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID con su producto cargado.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	var it entity.Item
	err := r.db.Preload("Product").First(&it, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListAll lista todos los ítems con su producto cargado.
func (r *ItemRepo) ListAll() ([]*entity.Item, error) {
	var list []*entity.Item
	err := r.db.Preload("Product").Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return list, nil
}

// ListByProduct lista los ítems de un producto.
func (r *ItemRepo) ListByProduct(productID string) ([]*entity.Item, error) {
	var list []*entity.Item
	err := r.db.Preload("Product").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list items by product: %w", err)
	}
	return list, nil
}

// ListExpiringWithin lista ítems cuya fecha de vencimiento cae hasta hoy+days
// inclusive (comparación por fecha, no por hora).
func (r *ItemRepo) ListExpiringWithin(days int) ([]*entity.Item, error) {
	limit := startOfDay(time.Now()).AddDate(0, 0, days+1)

	var list []*entity.Item
	err := r.db.Preload("Product").
		Where("expiration_date IS NOT NULL AND expiration_date < ?", limit).
		Order("expiration_date ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list expiring items: %w", err)
	}
	return list, nil
}

// ExpirationReport une ítem, producto y categoría para los ítems con stock que
// vencen estrictamente después de hoy y hasta hoy+days inclusive.
func (r *ItemRepo) ExpirationReport(days int) ([]*repository.ExpirationReportRow, error) {
	today := startOfDay(time.Now())
	from := today.AddDate(0, 0, 1)
	to := today.AddDate(0, 0, days+1)

	var rows []*repository.ExpirationReportRow
	err := r.reportQuery().
		Where("items.quantity > 0 AND items.expiration_date >= ? AND items.expiration_date < ?", from, to).
		Order("items.expiration_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("expiration report: %w", err)
	}
	return rows, nil
}

// ExpiredReport une ítem, producto y categoría para los ítems con stock ya
// vencidos (vencimiento anterior a hoy).
func (r *ItemRepo) ExpiredReport() ([]*repository.ExpirationReportRow, error) {
	today := startOfDay(time.Now())

	var rows []*repository.ExpirationReportRow
	err := r.reportQuery().
		Where("items.quantity > 0 AND items.expiration_date IS NOT NULL AND items.expiration_date < ?", today).
		Order("items.expiration_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("expired items report: %w", err)
	}
	return rows, nil
}

func (r *ItemRepo) reportQuery() *gorm.DB {
	return r.db.Model(&entity.Item{}).
		Select("items.id AS item_id, items.batch, items.quantity, items.location, items.expiration_date, " +
			"products.name AS product_name, products.sku AS product_sku, categories.name AS category_name").
		Joins("JOIN products ON products.id = items.product_id").
		Joins("JOIN categories ON categories.id = products.category_id")
}

// Update actualiza un ítem existente (batch, vencimiento, ubicación, cantidad
// y estado derivado).
func (r *ItemRepo) Update(item *entity.Item) error {
	err := r.db.Model(&entity.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"batch":           item.Batch,
			"expiration_date": item.ExpirationDate,
			"location":        item.Location,
			"quantity":        item.Quantity,
			"status":          item.Status,
			"updated_at":      item.UpdatedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}
