package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// MovementUseCase consultas del ledger y registro transaccional de
// movimientos: el ajuste de cantidad del ítem y la fila del ledger se
// persisten juntos o no se persisten.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// ListByItem lista los movimientos de un ítem.
func (uc *MovementUseCase) ListByItem(itemID string) ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListByPeriod lista los movimientos con fecha dentro de [startDate, endDate].
func (uc *MovementUseCase) ListByPeriod(startDate, endDate time.Time) ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.ListByPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// Register registra un movimiento IN u OUT sobre un ítem: calcula la nueva
// cantidad, deriva el estado del ítem y persiste ítem + ledger en una
// transacción. Una salida que dejaría stock negativo responde
// ErrInsufficientStock.
func (uc *MovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return nil, fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrInvalidInput, in.Type)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}

	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movementRepo repository.MovementRepository,
		userRepo repository.UserRepository,
	) error {
		item, err := itemRepo.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: ítem no encontrado", domain.ErrNotFound)
		}
		if item.Status == entity.ItemStatusInactive {
			return fmt.Errorf("%w: el ítem está inactivo", domain.ErrConflict)
		}

		user, err := userRepo.GetByID(in.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: usuario no encontrado", domain.ErrNotFound)
		}

		previous := item.Quantity
		var next int
		switch in.Type {
		case entity.MovementTypeIN:
			next = previous + in.Quantity
		case entity.MovementTypeOUT:
			next = previous - in.Quantity
		}
		if next < 0 {
			return fmt.Errorf("%w: la salida dejaría la cantidad en %d", domain.ErrInsufficientStock, next)
		}

		now := time.Now().UTC()
		item.Quantity = next
		item.Status = entity.CalculateItemStatus(next, item.Product.MinimumQuantity)
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}

		movement := &entity.Movement{
			ID:               uuid.New().String(),
			Date:             now,
			Type:             in.Type,
			QuantityMoved:    in.Quantity,
			PreviousQuantity: previous,
			NewQuantity:      next,
			ItemID:           item.ID,
			UserID:           user.ID,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}

		out = &dto.MovementResponse{
			ID:               movement.ID,
			Date:             movement.Date,
			Type:             movement.Type,
			QuantityMoved:    movement.QuantityMoved,
			PreviousQuantity: movement.PreviousQuantity,
			NewQuantity:      movement.NewQuantity,
			ItemID:           movement.ItemID,
			ProductName:      item.Product.Name,
			UserID:           movement.UserID,
			UserName:         user.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toMovementResponses(list []*entity.Movement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:               m.ID,
			Date:             m.Date,
			Type:             m.Type,
			QuantityMoved:    m.QuantityMoved,
			PreviousQuantity: m.PreviousQuantity,
			NewQuantity:      m.NewQuantity,
			ItemID:           m.ItemID,
			ProductName:      m.Item.Product.Name,
			UserID:           m.UserID,
			UserName:         m.User.Name,
		})
	}
	return out
}
