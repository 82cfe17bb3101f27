package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre GORM.
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto junto con sus ítems iniciales (cascada de
// la asociación Items). Violación del índice único de SKU -> ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con sus ítems cargados.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Preload("Items").First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetBySKU obtiene un producto por SKU con sus ítems cargados.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Preload("Items").First(&p, "sku = ?", sku).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// ListByStatus lista productos por estado con sus ítems cargados.
func (r *ProductRepo) ListByStatus(status string) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.db.Preload("Items").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// ListLowStock lista productos activos cuya suma de cantidades de ítems está
// por debajo de su mínimo. El agrupado es por PK, por lo que minimum_quantity
// puede referenciarse en el HAVING.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.db.Model(&entity.Product{}).
		Preload("Items").
		Joins("LEFT JOIN items ON items.product_id = products.id").
		Where("products.status = ?", entity.ProductStatusActive).
		Group("products.id").
		Having("COALESCE(SUM(items.quantity), 0) < products.minimum_quantity").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	return list, nil
}

// Update actualiza un producto existente (name, categoría, mínimo, estado).
func (r *ProductRepo) Update(product *entity.Product) error {
	err := r.db.Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":             product.Name,
			"category_id":      product.CategoryID,
			"minimum_quantity": product.MinimumQuantity,
			"status":           product.Status,
			"updated_at":       product.UpdatedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}
