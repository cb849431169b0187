package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterAdjustmentRequest body para POST /api/inventory/adjustments.
// Delta con signo: positivo entrada, negativo consumo. Un delta negativo que
// dejaría el saldo bajo cero se rechaza con INSUFFICIENT_STOCK.
type RegisterAdjustmentRequest struct {
	ProductID   string          `json:"product_id"`
	Delta       decimal.Decimal `json:"delta"`
	UnitMeasure string          `json:"unit_measure"`
	Note        string          `json:"note,omitempty"`
}

// RegisterAdjustmentResponse respuesta del ajuste manual.
type RegisterAdjustmentResponse struct {
	LedgerID string `json:"ledger_id"`
}

// LedgerEntryResponse asiento del libro para respuestas HTTP.
type LedgerEntryResponse struct {
	ID                  string          `json:"id"`
	ProductID           string          `json:"product_id"`
	QuantityChange      decimal.Decimal `json:"quantity_change"`
	UnitMeasure         string          `json:"unit_of_measure"`
	SourceTable         string          `json:"source_table"`
	SourceTransactionID string          `json:"source_transaction_id"`
	Notes               string          `json:"notes,omitempty"`
	CreatedBy           string          `json:"created_by"`
	CreatedAt           time.Time       `json:"created_at"`
}

// StockItemResponse proyección de stock por producto con alerta de reorden.
type StockItemResponse struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitMeasure  string          `json:"unit_of_measure"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	BelowReorder bool            `json:"below_reorder"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// AuditMismatchResponse producto cuyo saldo no coincide con la suma del libro.
type AuditMismatchResponse struct {
	ProductID       string          `json:"product_id"`
	SKU             string          `json:"sku"`
	BalanceQuantity decimal.Decimal `json:"balance_quantity"`
	LedgerSum       decimal.Decimal `json:"ledger_sum"`
	Difference      decimal.Decimal `json:"difference"`
}
