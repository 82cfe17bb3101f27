package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
)

// newTestDB abre una base SQLite en memoria con el mismo esquema que
// producción. TranslateError mantiene la detección de duplicados portable
// entre drivers.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))
	return db
}

func newCategoryUC(db *gorm.DB) *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(postgres.NewCategoryRepository(db), language.Spanish)
}

func newProductUC(db *gorm.DB) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(postgres.NewProductRepository(db), postgres.NewCategoryRepository(db))
}

func newItemUC(db *gorm.DB) *usecase.ItemUseCase {
	return usecase.NewItemUseCase(postgres.NewItemRepository(db), postgres.NewProductRepository(db))
}

// seedCategory crea una categoría vía caso de uso y devuelve su ID.
func seedCategory(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	out, err := newCategoryUC(db).Create(dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return out.ID
}

// seedProduct crea un producto activo sin ítems y devuelve su ID.
func seedProduct(t *testing.T, db *gorm.DB, sku string, minimum int) string {
	t.Helper()
	categoryID := seedCategory(t, db, "Insumos "+sku)
	out, err := newProductUC(db).Create(dto.CreateProductRequest{
		SKU:             sku,
		Name:            "Producto " + sku,
		CategoryID:      categoryID,
		MinimumQuantity: minimum,
	})
	require.NoError(t, err)
	return out.ID
}

// seedRawItem inserta un ítem directo en la base, sin pasar por el caso de
// uso. Necesario para armar escenarios que la API no permite crear (ítems ya
// vencidos, inactivos, etc.).
func seedRawItem(t *testing.T, db *gorm.DB, productID, batch string, quantity int, expiration *time.Time, status string) string {
	t.Helper()
	now := time.Now().UTC()
	item := entity.Item{
		ID:             uuid.New().String(),
		Batch:          batch,
		Quantity:       quantity,
		ExpirationDate: expiration,
		Location:       "Bodega A",
		Status:         status,
		ProductID:      productID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, db.Create(&item).Error)
	return item.ID
}

// daysFromNow fecha puntual a medianoche UTC, days días desde hoy.
func daysFromNow(days int) *time.Time {
	y, m, d := time.Now().UTC().Date()
	ts := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	return &ts
}
