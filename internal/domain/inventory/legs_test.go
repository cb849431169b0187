package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolina/planta-api/internal/domain/entity"
	"github.com/dmolina/planta-api/internal/domain/inventory"
)

func strPtr(s string) *string { return &s }

func balde() *entity.Product {
	return &entity.Product{
		ID:            "prod-balde",
		SKU:           "PT-BALDE-20L",
		Category:      entity.CategoryFinishedGood,
		UnitMeasure:   "UN",
		RawMaterialID: strPtr("prod-pp"),
		MasterBatchID: strPtr("prod-mb"),
	}
}

func TestPlanLegs_TresPiernasEnOrdenFijo(t *testing.T) {
	legs := inventory.PlanLegs(balde(), strPtr("prod-pp"), strPtr("prod-mb"),
		decimal.NewFromInt(500), decimal.NewFromInt(10), decimal.NewFromInt(2))

	require.Len(t, legs, 3)

	assert.Equal(t, "prod-balde", legs[0].ProductID)
	assert.True(t, legs[0].Delta.Equal(decimal.NewFromInt(500)), "crédito de piezas reales")

	assert.Equal(t, "prod-pp", legs[1].ProductID)
	assert.True(t, legs[1].Delta.Equal(decimal.NewFromInt(-10)), "débito de materia prima")

	assert.Equal(t, "prod-mb", legs[2].ProductID)
	assert.True(t, legs[2].Delta.Equal(decimal.NewFromInt(-2)), "débito de master batch")
}

// Sin dependencia declarada no hay pierna de master batch aunque lleguen bultos.
func TestPlanLegs_SinDependenciaMasterBatch_BultosIgnorados(t *testing.T) {
	p := balde()
	p.MasterBatchID = nil

	legs := inventory.PlanLegs(p, strPtr("prod-pp"), strPtr("prod-mb"),
		decimal.NewFromInt(500), decimal.NewFromInt(10), decimal.NewFromInt(3))

	require.Len(t, legs, 2)
	for _, leg := range legs {
		assert.NotEqual(t, "prod-mb", leg.ProductID)
	}
}

// La referencia sola no habilita la pierna: también se necesitan bultos > 0.
func TestPlanLegs_CantidadCero_OmitePierna(t *testing.T) {
	legs := inventory.PlanLegs(balde(), strPtr("prod-pp"), strPtr("prod-mb"),
		decimal.NewFromInt(500), decimal.Zero, decimal.Zero)

	require.Len(t, legs, 1)
	assert.Equal(t, "prod-balde", legs[0].ProductID)
}

// Bultos sin referencia de materia prima: la pierna se omite, no es error.
func TestPlanLegs_SinReferenciaMateriaPrima_OmitePierna(t *testing.T) {
	legs := inventory.PlanLegs(balde(), nil, strPtr("prod-mb"),
		decimal.NewFromInt(500), decimal.NewFromInt(10), decimal.NewFromInt(2))

	require.Len(t, legs, 2)
	assert.Equal(t, "prod-balde", legs[0].ProductID)
	assert.Equal(t, "prod-mb", legs[1].ProductID)
}

func TestPlanLegs_SinPiezasProducidas_SinCredito(t *testing.T) {
	legs := inventory.PlanLegs(balde(), strPtr("prod-pp"), strPtr("prod-mb"),
		decimal.Zero, decimal.NewFromInt(10), decimal.NewFromInt(2))

	require.Len(t, legs, 2)
	assert.Equal(t, "prod-pp", legs[0].ProductID)
	assert.Equal(t, "prod-mb", legs[1].ProductID)
}
