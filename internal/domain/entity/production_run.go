package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Turnos reconocidos de la planta.
const (
	ShiftDay     = "DIA"
	ShiftEvening = "TARDE"
	ShiftNight   = "NOCHE"
)

// ValidShift indica si el turno es uno de los reconocidos.
func ValidShift(s string) bool {
	switch s {
	case ShiftDay, ShiftEvening, ShiftNight:
		return true
	}
	return false
}

// ProductionRun es el registro de una orden de producción: el ancla que los
// asientos del libro (1 a 3) referencian vía SourceTransactionID. Se crea una
// sola vez al confirmar la orden y es inmutable después.
type ProductionRun struct {
	ID              string
	ProductID       string // producto terminado
	MachineID       string
	TargetQuantity  decimal.Decimal
	ActualQuantity  decimal.Decimal // piezas producidas
	WasteQuantity   decimal.Decimal
	RawMaterialID   *string
	RawMaterialBags decimal.Decimal // bultos de materia prima consumidos
	MasterBatchID   *string
	MasterBatchBags decimal.Decimal // bultos de master batch consumidos
	Shift           string          // DIA, TARDE, NOCHE
	CreatedBy       string
	StartedAt       *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time
}
