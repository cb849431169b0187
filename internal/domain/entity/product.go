package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto de la planta.
const (
	CategoryRawMaterial  = "RAW_MATERIAL"  // materia prima (resina en bultos)
	CategoryFinishedGood = "FINISHED_GOOD" // producto terminado
	CategoryMasterBatch  = "MASTER_BATCH"  // aditivo colorante
	CategoryRegrind      = "REGRIND"       // material remolido
)

// ValidCategory indica si la categoría es una de las reconocidas.
func ValidCategory(c string) bool {
	switch c {
	case CategoryRawMaterial, CategoryFinishedGood, CategoryMasterBatch, CategoryRegrind:
		return true
	}
	return false
}

// Product representa un producto o SKU de la planta.
// Un producto terminado puede declarar su materia prima y master batch por defecto;
// la orden de producción usa esas dependencias cuando el caller no las indica.
// La identidad es inmutable; los atributos se editan vía el CRUD de productos
// con lista fija de campos (nunca copia ambiente de campos).
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Category      string // RAW_MATERIAL, FINISHED_GOOD, MASTER_BATCH, REGRIND
	UnitMeasure   string // UN, KG, BULTO
	RawMaterialID *string // dependencia por defecto (solo producto terminado)
	MasterBatchID *string // dependencia de master batch; nil = no consume master batch
	ReorderLevel  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsFinishedGood indica si el producto es producto terminado.
func (p *Product) IsFinishedGood() bool {
	return p.Category == CategoryFinishedGood
}
