package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// El estado de un ítem se deriva siempre de cantidad vs. mínimo del producto.
// El estado inactivo nunca sale de esta función: solo se asigna en la baja
// lógica explícita.
func TestCalculateItemStatus(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minimum  int
		want     string
	}{
		{"cantidad cero es agotado", 0, 5, entity.ItemStatusOutOfStock},
		{"cantidad cero con mínimo cero sigue agotado", 0, 0, entity.ItemStatusOutOfStock},
		{"cantidad igual al mínimo alerta", 5, 5, entity.ItemStatusAlert},
		{"cantidad bajo el mínimo alerta", 3, 5, entity.ItemStatusAlert},
		{"cantidad sobre el mínimo disponible", 6, 5, entity.ItemStatusAvailable},
		{"mínimo cero con stock disponible", 1, 0, entity.ItemStatusAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.CalculateItemStatus(tc.quantity, tc.minimum))
		})
	}
}

func TestProductQuantityTotal(t *testing.T) {
	p := entity.Product{
		Items: []entity.Item{
			{Quantity: 3},
			{Quantity: 0},
			{Quantity: 7},
		},
	}
	assert.Equal(t, 10, p.QuantityTotal())

	var empty entity.Product
	assert.Equal(t, 0, empty.QuantityTotal())
}
