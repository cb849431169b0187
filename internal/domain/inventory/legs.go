package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/dmolina/planta-api/internal/domain/entity"
)

// Leg es una mutación de stock con signo que forma parte de una orden de
// producción compuesta. Las piernas se aplican siempre en el orden fijo en que
// PlanLegs las devuelve: crédito de producto terminado, débito de materia
// prima, débito de master batch.
type Leg struct {
	ProductID string
	Delta     decimal.Decimal
	Note      string
}

// PlanLegs calcula las piernas de una orden de producción (servicio de dominio, puro).
// Reglas:
//   - El crédito del producto terminado usa las piezas reales producidas.
//   - El débito de materia prima solo existe si hay referencia y bultos > 0.
//   - El débito de master batch solo existe si el producto terminado declara la
//     dependencia; sin dependencia declarada, los bultos enviados se tratan
//     como cero (no es un error). masterBatchID puede sobreescribir el lote a
//     debitar, pero nunca habilita la pierna por sí solo.
//   - Piernas con cantidad cero se omiten.
func PlanLegs(product *entity.Product, rawMaterialID, masterBatchID *string, actualPieces, rawBags, masterBags decimal.Decimal) []Leg {
	legs := make([]Leg, 0, 3)

	if actualPieces.GreaterThan(decimal.Zero) {
		legs = append(legs, Leg{
			ProductID: product.ID,
			Delta:     actualPieces,
			Note:      "producción de " + product.SKU,
		})
	}

	if rawMaterialID != nil && *rawMaterialID != "" && rawBags.GreaterThan(decimal.Zero) {
		legs = append(legs, Leg{
			ProductID: *rawMaterialID,
			Delta:     rawBags.Neg(),
			Note:      "consumo materia prima para " + product.SKU,
		})
	}

	if product.MasterBatchID != nil && masterBatchID != nil && *masterBatchID != "" && masterBags.GreaterThan(decimal.Zero) {
		legs = append(legs, Leg{
			ProductID: *masterBatchID,
			Delta:     masterBags.Neg(),
			Note:      "consumo master batch para " + product.SKU,
		})
	}

	return legs
}
