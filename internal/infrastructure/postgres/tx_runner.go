package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción GORM, con repos atados
// a la tx. Si fn devuelve error la transacción se revierte.
type TxRunner struct {
	db *gorm.DB
}

// NewTxRunner construye el runner con la conexión.
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia la transacción y ejecuta fn con repos transaccionales.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movementRepo repository.MovementRepository,
	userRepo repository.UserRepository,
) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewItemRepository(tx), NewMovementRepository(tx), NewUserRepository(tx))
	})
}
