package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductionRunRequest body para POST /api/production-runs.
// RawMaterialID y MasterBatchID son opcionales: si faltan se usan las
// dependencias declaradas por el producto terminado. Los bultos de master
// batch se ignoran si el producto no declara esa dependencia.
type CreateProductionRunRequest struct {
	ProductID       string          `json:"product_id"`
	MachineID       string          `json:"machine_id"`
	TargetQuantity  decimal.Decimal `json:"target_quantity"`
	ActualPieces    decimal.Decimal `json:"actual_pieces_produced"`
	WasteQuantity   decimal.Decimal `json:"waste_quantity"`
	RawMaterialID   *string         `json:"raw_material_id,omitempty"`
	RawMaterialBags decimal.Decimal `json:"raw_material_bags_used"`
	MasterBatchID   *string         `json:"master_batch_id,omitempty"`
	MasterBatchBags decimal.Decimal `json:"master_batch_bags_used"`
	Shift           string          `json:"shift"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
}

// ProductionRunResponse orden de producción para respuestas HTTP.
type ProductionRunResponse struct {
	ID              string          `json:"production_run_id"`
	ProductID       string          `json:"product_id"`
	MachineID       string          `json:"machine_id"`
	TargetQuantity  decimal.Decimal `json:"target_quantity"`
	ActualQuantity  decimal.Decimal `json:"actual_pieces_produced"`
	WasteQuantity   decimal.Decimal `json:"waste_quantity"`
	RawMaterialID   *string         `json:"raw_material_id,omitempty"`
	RawMaterialBags decimal.Decimal `json:"raw_material_bags_used"`
	MasterBatchID   *string         `json:"master_batch_id,omitempty"`
	MasterBatchBags decimal.Decimal `json:"master_batch_bags_used"`
	Shift           string          `json:"shift"`
	CreatedBy       string          `json:"created_by"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// VerifyRunResponse resultado de la verificación de una orden contra el libro.
type VerifyRunResponse struct {
	ProductionRunID string                `json:"production_run_id"`
	Consistent      bool                  `json:"consistent"`
	ExpectedLegs    int                   `json:"expected_legs"`
	FoundLegs       int                   `json:"found_legs"`
	Entries         []LedgerEntryResponse `json:"entries"`
}
