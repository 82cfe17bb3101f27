package repository

import (
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para Movement (DIP).
// El ledger es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListByItem(itemID string) ([]*entity.Movement, error)
	ListByPeriod(startDate, endDate time.Time) ([]*entity.Movement, error)
}
