package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmolina/planta-api/internal/domain"
	"github.com/dmolina/planta-api/internal/domain/entity"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

// AdjustmentUseCase es la primitiva atómica del motor de inventario: bloquea el
// saldo de un producto (SELECT FOR UPDATE), valida que el delta no lo deje bajo
// cero, persiste la nueva cantidad y agrega exactamente un asiento al libro,
// todo en una sola transacción. Sin updates perdidos bajo callers concurrentes
// sobre el mismo producto; productos distintos nunca se bloquean entre sí.
type AdjustmentUseCase struct {
	txRunner TxRunner
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(txRunner TxRunner) *AdjustmentUseCase {
	return &AdjustmentUseCase{txRunner: txRunner}
}

// AdjustmentInput entrada de un ajuste de stock. Delta con signo; la lista de
// campos es fija y se valida antes de cualquier escritura.
type AdjustmentInput struct {
	ProductID           string
	Delta               decimal.Decimal
	UnitMeasure         string
	Note                string
	SourceTable         string // manual_adjustments | production_runs
	SourceTransactionID string // vacío en ajustes manuales: se acuña uno nuevo
	CreatedBy           string
}

func (in *AdjustmentInput) validate() error {
	if in.ProductID == "" || in.CreatedBy == "" {
		return domain.ErrInvalidInput
	}
	if in.Delta.IsZero() {
		return domain.ErrInvalidInput
	}
	if in.UnitMeasure == "" {
		return domain.ErrInvalidInput
	}
	switch in.SourceTable {
	case entity.SourceManualAdjustment, entity.SourceProductionRun:
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// Apply ejecuta un ajuste en su propia transacción y devuelve el ID del asiento.
// Errores: ErrInvalidInput (pre-mutación), ErrBalanceNotFound, ErrInsufficientStock
// (sin mutación), ErrLockTimeout (reintentable por el caller, sin mutación); los
// fallos de persistencia llegan envueltos y no dejan escrituras parciales.
func (uc *AdjustmentUseCase) Apply(ctx context.Context, in AdjustmentInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	if in.SourceTransactionID == "" {
		in.SourceTransactionID = uuid.New().String()
	}

	var ledgerID string
	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		balanceRepo repository.BalanceRepository,
	) error {
		id, err := uc.ApplyInTx(ledgerRepo, balanceRepo, in)
		if err != nil {
			return err
		}
		ledgerID = id
		return nil
	})
	if err != nil {
		return "", err
	}
	return ledgerID, nil
}

// ApplyInTx ejecuta el ajuste usando los repositorios del caller (misma
// transacción). Lo usa la orden de producción una vez por pierna; si retorna
// error (ej. ErrInsufficientStock detectado bajo el bloqueo), el caller hace
// rollback de toda la transacción.
func (uc *AdjustmentUseCase) ApplyInTx(
	ledgerRepo repository.LedgerRepository,
	balanceRepo repository.BalanceRepository,
	in AdjustmentInput,
) (string, error) {
	// Bloquea la fila del saldo; serializa los ajustes del mismo producto
	balance, err := balanceRepo.GetForUpdate(in.ProductID)
	if err != nil {
		return "", err
	}

	newQty := balance.Quantity.Add(in.Delta)
	if newQty.LessThan(decimal.Zero) {
		return "", domain.ErrInsufficientStock
	}

	now := time.Now()
	balance.Quantity = newQty
	balance.UpdatedAt = now
	if err := balanceRepo.UpdateQuantity(balance); err != nil {
		return "", err
	}

	entry := &entity.LedgerEntry{
		ID:                  uuid.New().String(),
		ProductID:           in.ProductID,
		QuantityChange:      in.Delta,
		UnitMeasure:         in.UnitMeasure,
		SourceTable:         in.SourceTable,
		SourceTransactionID: in.SourceTransactionID,
		Notes:               in.Note,
		CreatedBy:           in.CreatedBy,
		CreatedAt:           now,
	}
	if err := ledgerRepo.Create(entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}
