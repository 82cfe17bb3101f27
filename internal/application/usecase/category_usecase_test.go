package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
)

func TestCategoryCreate_NormalizaElNombre(t *testing.T) {
	db := newTestDB(t)
	uc := newCategoryUC(db)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "  electrónica  ", Description: " gadgets "})
	require.NoError(t, err)

	assert.Equal(t, "Electrónica", out.Name)
	assert.Equal(t, "gadgets", out.Description)
	assert.NotEmpty(t, out.ID)
	assert.Zero(t, out.TotalProducts)
}

// Dos escrituras distintas del mismo nombre colapsan en la forma normalizada,
// así que la segunda debe rechazarse como duplicado.
func TestCategoryCreate_NombreDuplicadoNormalizado(t *testing.T) {
	db := newTestDB(t)
	uc := newCategoryUC(db)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "  BEBIDAS "})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryCreate_NombreInvalido(t *testing.T) {
	db := newTestDB(t)
	uc := newCategoryUC(db)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Lote-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Categoría 2"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryGetByID_NoExisteDevuelveNil(t *testing.T) {
	db := newTestDB(t)
	uc := newCategoryUC(db)

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCategoryUpdate_Parcial(t *testing.T) {
	db := newTestDB(t)
	uc := newCategoryUC(db)

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Limpieza", Description: "original"})
	require.NoError(t, err)

	desc := "productos de aseo"
	updated, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Description: &desc})
	require.NoError(t, err)

	// Solo cambia lo enviado; CreatedAt representa la creación y no se toca.
	assert.Equal(t, "Limpieza", updated.Name)
	assert.Equal(t, "productos de aseo", updated.Description)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestCategoryUpdate_NombreEnUsoPorOtra(t *testing.T) {
	db := newTestDB(t)
	uc := newCategoryUC(db)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	other, err := uc.Create(dto.CreateCategoryRequest{Name: "Snacks"})
	require.NoError(t, err)

	name := "bebidas"
	_, err = uc.Update(other.ID, dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Reescribir el propio nombre con otra capitalización no es conflicto.
	same := " SNACKS "
	out, err := uc.Update(other.ID, dto.UpdateCategoryRequest{Name: &same})
	require.NoError(t, err)
	assert.Equal(t, "Snacks", out.Name)
}

func TestCategoryUpdate_NoExisteDevuelveNil(t *testing.T) {
	db := newTestDB(t)
	uc := newCategoryUC(db)

	name := "Nueva"
	out, err := uc.Update("no-existe", dto.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCategoryList_CuentaProductos(t *testing.T) {
	db := newTestDB(t)
	uc := newCategoryUC(db)

	categoryID := seedCategory(t, db, "Farmacia")
	_, err := newProductUC(db).Create(dto.CreateProductRequest{
		SKU:        "FAR-001",
		Name:       "Alcohol",
		CategoryID: categoryID,
	})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].TotalProducts)
}
