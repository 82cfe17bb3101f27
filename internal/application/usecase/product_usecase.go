package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos. El borrado es lógico: los
// productos inactivos quedan ocultos de los getters pero nunca se eliminan.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// ListActive lista los productos activos.
func (uc *ProductUseCase) ListActive() ([]dto.ProductResponse, error) {
	return uc.listByStatus(entity.ProductStatusActive)
}

// ListInactive lista los productos dados de baja.
func (uc *ProductUseCase) ListInactive() ([]dto.ProductResponse, error) {
	return uc.listByStatus(entity.ProductStatusInactive)
}

func (uc *ProductUseCase) listByStatus(status string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// ListLowStock lista los productos activos con stock total por debajo del
// mínimo configurado.
func (uc *ProductUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID. Un producto inactivo se trata como
// inexistente.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.Status == entity.ProductStatusInactive {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// GetBySKU obtiene un producto por SKU. Un producto inactivo se trata como
// inexistente.
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if p == nil || p.Status == entity.ProductStatusInactive {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// Create crea un producto activo, opcionalmente con sus ítems iniciales. Los
// ítems se validan antes de tocar la base y nacen con su estado derivado.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		return nil, fmt.Errorf("%w: sku es requerido", domain.ErrInvalidInput)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.MinimumQuantity < 0 {
		return nil, fmt.Errorf("%w: minimum_quantity debe ser mayor o igual a cero", domain.ErrInvalidInput)
	}

	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
	}

	existing, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un producto con el SKU %q", domain.ErrDuplicate, sku)
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:              uuid.New().String(),
		SKU:             sku,
		Name:            name,
		Status:          entity.ProductStatusActive,
		MinimumQuantity: in.MinimumQuantity,
		CategoryID:      category.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for _, itemIn := range in.Items {
		if err := validateItemInput(itemIn, now); err != nil {
			return nil, err
		}
		product.Items = append(product.Items, buildItem(product.ID, in.MinimumQuantity, itemIn, now))
	}

	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza name, categoría y/o mínimo. Devuelve nil si el producto no
// existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede ser vacío", domain.ErrInvalidInput)
		}
		product.Name = name
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
		}
		product.CategoryID = category.ID
	}
	if in.MinimumQuantity != nil {
		if *in.MinimumQuantity < 0 {
			return nil, fmt.Errorf("%w: minimum_quantity debe ser mayor o igual a cero", domain.ErrInvalidInput)
		}
		product.MinimumQuantity = *in.MinimumQuantity
	}
	product.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete da de baja lógica un producto. Falla con ErrNotFound si no existe y
// con ErrConflict si ya estaba inactivo.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
	}
	if product.Status == entity.ProductStatusInactive {
		return fmt.Errorf("%w: el producto ya está inactivo", domain.ErrConflict)
	}

	product.Status = entity.ProductStatusInactive
	product.UpdatedAt = time.Now().UTC()
	return uc.repo.Update(product)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Status:          p.Status,
		MinimumQuantity: p.MinimumQuantity,
		CategoryID:      p.CategoryID,
		QuantityTotal:   p.QuantityTotal(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
