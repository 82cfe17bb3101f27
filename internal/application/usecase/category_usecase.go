package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/names"
)

// CategoryUseCase casos de uso para categorías. El nombre se guarda siempre
// normalizado con el locale configurado, y la unicidad se compara sobre esa
// forma normalizada.
type CategoryUseCase struct {
	repo   repository.CategoryRepository
	locale language.Tag
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, locale language.Tag) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, locale: locale}
}

// List lista todas las categorías con su total de productos.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// GetByID obtiene una categoría por ID. Devuelve nil si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCategoryResponse(c), nil
}

// Create crea una nueva categoría con el nombre normalizado. El pre-chequeo de
// nombre duplicado es cortesía: bajo carrera, el índice único responde con
// ErrDuplicate desde el repositorio.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	normalized, err := uc.normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByName(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe una categoría con el nombre %q", domain.ErrDuplicate, normalized)
	}

	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        normalized,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update actualiza name y/o description. No toca CreatedAt: representa cuándo
// se creó la categoría. Devuelve nil si la categoría no existe.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if in.Name != nil {
		normalized, err := uc.normalizeName(*in.Name)
		if err != nil {
			return nil, err
		}
		other, err := uc.repo.GetByName(normalized)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != existing.ID {
			return nil, fmt.Errorf("%w: ya existe una categoría con el nombre %q", domain.ErrDuplicate, normalized)
		}
		existing.Name = normalized
	}
	if in.Description != nil {
		existing.Description = strings.TrimSpace(*in.Description)
	}

	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toCategoryResponse(existing), nil
}

func (uc *CategoryUseCase) normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if !names.OnlyLettersAndSpaces(trimmed) {
		return "", fmt.Errorf("%w: name solo admite letras y espacios", domain.ErrInvalidInput)
	}
	return names.NormalizeTitleCase(uc.locale, trimmed), nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		TotalProducts: len(c.Products),
		CreatedAt:     c.CreatedAt,
	}
}
