package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Al crear el producto se aprovisiona también su saldo de stock en 0.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"` // RAW_MATERIAL, FINISHED_GOOD, MASTER_BATCH, REGRIND
	UnitMeasure   string          `json:"unit_measure"`
	RawMaterialID *string         `json:"raw_material_id,omitempty"`
	MasterBatchID *string         `json:"master_batch_id,omitempty"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
}

// UpdateProductRequest actualización parcial con lista fija de campos.
// La identidad (ID, SKU) y la categoría no son editables; el saldo solo se
// mueve vía ajustes.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	UnitMeasure   *string          `json:"unit_measure,omitempty"`
	RawMaterialID *string          `json:"raw_material_id,omitempty"`
	MasterBatchID *string          `json:"master_batch_id,omitempty"`
	ReorderLevel  *decimal.Decimal `json:"reorder_level,omitempty"`
}

// ProductResponse producto para respuestas HTTP.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	UnitMeasure   string          `json:"unit_measure"`
	RawMaterialID *string         `json:"raw_material_id,omitempty"`
	MasterBatchID *string         `json:"master_batch_id,omitempty"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
