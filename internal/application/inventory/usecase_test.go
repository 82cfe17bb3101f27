package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
)

// fixture arma la base en memoria con un producto (mínimo 5), un ítem con
// stock 10 y un usuario operador.
type fixture struct {
	db     *gorm.DB
	uc     *inventory.MovementUseCase
	itemID string
	userID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	now := time.Now().UTC()
	category := entity.Category{ID: uuid.New().String(), Name: "Insumos", CreatedAt: now}
	require.NoError(t, db.Create(&category).Error)

	product := entity.Product{
		ID:              uuid.New().String(),
		SKU:             "MOV-001",
		Name:            "Guantes",
		Status:          entity.ProductStatusActive,
		MinimumQuantity: 5,
		CategoryID:      category.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, db.Create(&product).Error)

	item := entity.Item{
		ID:        uuid.New().String(),
		Batch:     "G-01",
		Quantity:  10,
		Location:  "Bodega A",
		Status:    entity.ItemStatusAvailable,
		ProductID: product.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(&item).Error)

	user := entity.User{
		ID:        uuid.New().String(),
		Name:      "Ana Pérez",
		Email:     "ana@example.com",
		Profile:   "operadora",
		CreatedAt: now,
	}
	require.NoError(t, db.Create(&user).Error)

	uc := inventory.NewMovementUseCase(postgres.NewTxRunner(db), postgres.NewMovementRepository(db))
	return &fixture{db: db, uc: uc, itemID: item.ID, userID: user.ID}
}

func (f *fixture) register(t *testing.T, movementType string, quantity int) (*dto.MovementResponse, error) {
	t.Helper()
	return f.uc.Register(context.Background(), dto.RegisterMovementRequest{
		ItemID:   f.itemID,
		UserID:   f.userID,
		Type:     movementType,
		Quantity: quantity,
	})
}

func (f *fixture) itemState(t *testing.T) *entity.Item {
	t.Helper()
	var it entity.Item
	require.NoError(t, f.db.First(&it, "id = ?", f.itemID).Error)
	return &it
}

// Una salida descuenta stock y el estado del ítem se recalcula contra el
// mínimo del producto: 10 → 5 (alerta) → 0 (agotado). Una salida más queda
// rechazada por stock insuficiente sin tocar la base.
func TestRegister_SalidasActualizanCantidadYEstado(t *testing.T) {
	f := newFixture(t)

	out, err := f.register(t, entity.MovementTypeOUT, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, out.PreviousQuantity)
	assert.Equal(t, 5, out.NewQuantity)
	assert.Equal(t, entity.ItemStatusAlert, f.itemState(t).Status)

	out, err = f.register(t, entity.MovementTypeOUT, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, out.NewQuantity)
	assert.Equal(t, entity.ItemStatusOutOfStock, f.itemState(t).Status)

	_, err = f.register(t, entity.MovementTypeOUT, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 0, f.itemState(t).Quantity, "la salida rechazada no altera el stock")

	movements, err := f.uc.ListByItem(f.itemID)
	require.NoError(t, err)
	assert.Len(t, movements, 2, "la salida rechazada no deja fila en el ledger")
}

func TestRegister_EntradaReponeStock(t *testing.T) {
	f := newFixture(t)

	_, err := f.register(t, entity.MovementTypeOUT, 10)
	require.NoError(t, err)

	out, err := f.register(t, entity.MovementTypeIN, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, out.PreviousQuantity)
	assert.Equal(t, 3, out.NewQuantity)
	// 3 <= mínimo 5: sigue en alerta.
	assert.Equal(t, entity.ItemStatusAlert, f.itemState(t).Status)

	out, err = f.register(t, entity.MovementTypeIN, 7)
	require.NoError(t, err)
	assert.Equal(t, 10, out.NewQuantity)
	assert.Equal(t, entity.ItemStatusAvailable, f.itemState(t).Status)
}

func TestRegister_RespuestaIncluyeNombres(t *testing.T) {
	f := newFixture(t)

	out, err := f.register(t, entity.MovementTypeIN, 2)
	require.NoError(t, err)

	assert.Equal(t, "Guantes", out.ProductName)
	assert.Equal(t, "Ana Pérez", out.UserName)
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.Date.IsZero())
}

func TestRegister_Validaciones(t *testing.T) {
	f := newFixture(t)

	// Solo IN y OUT crean movimientos; ADJUSTMENT queda reservado.
	_, err := f.register(t, entity.MovementTypeADJUSTMENT, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.register(t, "TRANSFER", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.register(t, entity.MovementTypeIN, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.register(t, entity.MovementTypeIN, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ItemOUsuarioInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), dto.RegisterMovementRequest{
		ItemID: "no-existe", UserID: f.userID, Type: entity.MovementTypeIN, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Register(context.Background(), dto.RegisterMovementRequest{
		ItemID: f.itemID, UserID: "no-existe", Type: entity.MovementTypeIN, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_ItemInactivoEsConflicto(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.db.Model(&entity.Item{}).
		Where("id = ?", f.itemID).
		Update("status", entity.ItemStatusInactive).Error)

	_, err := f.register(t, entity.MovementTypeIN, 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestListByPeriod(t *testing.T) {
	f := newFixture(t)

	_, err := f.register(t, entity.MovementTypeIN, 2)
	require.NoError(t, err)

	now := time.Now().UTC()
	list, err := f.uc.ListByPeriod(now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.uc.ListByPeriod(now.AddDate(0, 0, -10), now.AddDate(0, 0, -5))
	require.NoError(t, err)
	assert.Empty(t, list)
}
