package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los getters devuelven nil sin error cuando no hay fila.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	ListAll() ([]*entity.Category, error)
	Update(category *entity.Category) error
}
