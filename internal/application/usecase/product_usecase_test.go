package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func TestProductCreate_ConItemsIniciales(t *testing.T) {
	db := newTestDB(t)
	uc := newProductUC(db)
	categoryID := seedCategory(t, db, "Lácteos")

	out, err := uc.Create(dto.CreateProductRequest{
		SKU:             "LAC-001",
		Name:            "Leche entera",
		CategoryID:      categoryID,
		MinimumQuantity: 5,
		Items: []dto.CreateItemRequest{
			{Batch: "L-2026-01", Quantity: 12, Location: "Bodega A", ExpirationDate: daysFromNow(30)},
			{Batch: "L-2026-02", Quantity: 3, Location: "Bodega A", ExpirationDate: daysFromNow(60)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ProductStatusActive, out.Status)
	assert.Equal(t, 15, out.QuantityTotal)

	// Los ítems nacen con su estado derivado de cantidad vs. mínimo.
	items, err := newItemUC(db).ListByProduct(out.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	statuses := map[string]string{}
	for _, it := range items {
		statuses[it.Batch] = it.Status
	}
	assert.Equal(t, entity.ItemStatusAvailable, statuses["L-2026-01"])
	assert.Equal(t, entity.ItemStatusAlert, statuses["L-2026-02"])
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	db := newTestDB(t)
	uc := newProductUC(db)

	_, err := uc.Create(dto.CreateProductRequest{
		SKU:        "X-001",
		Name:       "Sin categoría",
		CategoryID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	db := newTestDB(t)
	uc := newProductUC(db)
	categoryID := seedCategory(t, db, "Bebidas")

	_, err := uc.Create(dto.CreateProductRequest{SKU: "BEB-001", Name: "Agua", CategoryID: categoryID})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "BEB-001", Name: "Jugo", CategoryID: categoryID})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El borrado es lógico: el producto queda oculto de los getters pero aparece
// en el listado de inactivos. Una segunda baja es conflicto.
func TestProductDelete_BorradoLogico(t *testing.T) {
	db := newTestDB(t)
	uc := newProductUC(db)
	productID := seedProduct(t, db, "DEL-001", 0)

	require.NoError(t, uc.Delete(productID))

	got, err := uc.GetByID(productID)
	require.NoError(t, err)
	assert.Nil(t, got, "un producto inactivo se trata como inexistente")

	inactive, err := uc.ListInactive()
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, productID, inactive[0].ID)

	err = uc.Delete(productID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductDelete_NoExiste(t *testing.T) {
	db := newTestDB(t)
	uc := newProductUC(db)

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetBySKU_InactivoOculto(t *testing.T) {
	db := newTestDB(t)
	uc := newProductUC(db)
	productID := seedProduct(t, db, "SKU-OCULTO", 0)

	got, err := uc.GetBySKU("SKU-OCULTO")
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NoError(t, uc.Delete(productID))

	got, err = uc.GetBySKU("SKU-OCULTO")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductListLowStock(t *testing.T) {
	db := newTestDB(t)
	uc := newProductUC(db)

	// Bajo el mínimo: 3 < 10.
	lowID := seedProduct(t, db, "LOW-001", 10)
	seedRawItem(t, db, lowID, "B1", 3, nil, entity.ItemStatusAlert)

	// Sobre el mínimo: 5 >= 2.
	okID := seedProduct(t, db, "OK-001", 2)
	seedRawItem(t, db, okID, "B2", 5, nil, entity.ItemStatusAvailable)

	// Sin ítems cuenta como stock cero: 0 < 1.
	emptyID := seedProduct(t, db, "EMPTY-001", 1)

	// Inactivo bajo mínimo no debe aparecer.
	inactiveID := seedProduct(t, db, "INA-001", 10)
	require.NoError(t, uc.Delete(inactiveID))

	list, err := uc.ListLowStock()
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{lowID, emptyID}, ids)
}

func TestProductUpdate_Parcial(t *testing.T) {
	db := newTestDB(t)
	uc := newProductUC(db)
	productID := seedProduct(t, db, "UPD-001", 2)

	name := "Nombre nuevo"
	minimum := 8
	out, err := uc.Update(productID, dto.UpdateProductRequest{Name: &name, MinimumQuantity: &minimum})
	require.NoError(t, err)

	assert.Equal(t, "Nombre nuevo", out.Name)
	assert.Equal(t, 8, out.MinimumQuantity)
	assert.Equal(t, "UPD-001", out.SKU, "el SKU no cambia en la actualización")
}

func TestProductUpdate_CategoriaInexistente(t *testing.T) {
	db := newTestDB(t)
	uc := newProductUC(db)
	productID := seedProduct(t, db, "UPD-002", 0)

	categoryID := "no-existe"
	_, err := uc.Update(productID, dto.UpdateProductRequest{CategoryID: &categoryID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_NoExisteDevuelveNil(t *testing.T) {
	db := newTestDB(t)
	uc := newProductUC(db)

	name := "X"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}
