package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre GORM.
type MovementRepo struct {
	db *gorm.DB
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(db *gorm.DB) *MovementRepo {
	return &MovementRepo{db: db}
}

// Create persiste una nueva entrada del ledger.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if err := r.db.Create(movement).Error; err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByItem lista los movimientos de un ítem, del más reciente al más viejo,
// con producto y usuario cargados.
func (r *MovementRepo) ListByItem(itemID string) ([]*entity.Movement, error) {
	var list []*entity.Movement
	err := r.db.Preload("Item.Product").Preload("User").
		Where("item_id = ?", itemID).
		Order("date DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list movements by item: %w", err)
	}
	return list, nil
}

// ListByPeriod lista los movimientos cuya fecha cae en [startDate, endDate].
func (r *MovementRepo) ListByPeriod(startDate, endDate time.Time) ([]*entity.Movement, error) {
	var list []*entity.Movement
	err := r.db.Preload("Item.Product").Preload("User").
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list movements by period: %w", err)
	}
	return list, nil
}
