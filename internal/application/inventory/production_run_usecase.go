package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmolina/planta-api/internal/application/dto"
	"github.com/dmolina/planta-api/internal/domain"
	"github.com/dmolina/planta-api/internal/domain/entity"
	domaininv "github.com/dmolina/planta-api/internal/domain/inventory"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

// ProductionRunUseCase orquesta una orden de producción: valida precondiciones
// (solo lectura), persiste la orden y aplica hasta tres piernas vía
// AdjustmentUseCase (crédito del terminado y débitos de consumo) dentro de
// UNA transacción envolvente. Un fallo en
// cualquier punto (incluido stock insuficiente detectado bajo el bloqueo de
// fila) revierte la orden y todas las piernas: no existe estado parcial.
type ProductionRunUseCase struct {
	txRunner     TxRunner
	adjustmentUC *AdjustmentUseCase
	productRepo  repository.ProductRepository
	machineRepo  repository.MachineRepository
	balanceRepo  repository.BalanceRepository
	runRepo      repository.ProductionRunRepository
	ledgerRepo   repository.LedgerRepository
}

// NewProductionRunUseCase construye el caso de uso.
func NewProductionRunUseCase(
	txRunner TxRunner,
	adjustmentUC *AdjustmentUseCase,
	productRepo repository.ProductRepository,
	machineRepo repository.MachineRepository,
	balanceRepo repository.BalanceRepository,
	runRepo repository.ProductionRunRepository,
	ledgerRepo repository.LedgerRepository,
) *ProductionRunUseCase {
	return &ProductionRunUseCase{
		txRunner:     txRunner,
		adjustmentUC: adjustmentUC,
		productRepo:  productRepo,
		machineRepo:  machineRepo,
		balanceRepo:  balanceRepo,
		runRepo:      runRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Register valida y confirma una orden de producción. Devuelve la orden creada
// o un error sin efectos secundarios: Validating → Committed o Validating →
// Rejected, nunca un estado intermedio observable tras retornar.
func (uc *ProductionRunUseCase) Register(ctx context.Context, userID string, in dto.CreateProductionRunRequest) (*dto.ProductionRunResponse, error) {
	// ── Fase pre-flight: solo lecturas, cero mutaciones ──
	if userID == "" || in.ProductID == "" || in.MachineID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidShift(in.Shift) {
		return nil, domain.ErrInvalidInput
	}
	for _, q := range []decimal.Decimal{in.TargetQuantity, in.ActualPieces, in.WasteQuantity, in.RawMaterialBags, in.MasterBatchBags} {
		if q.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsFinishedGood() {
		return nil, domain.ErrInvalidInput
	}

	machine, err := uc.machineRepo.GetByID(in.MachineID)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domain.ErrNotFound
	}
	if !machine.IsOperable() {
		return nil, domain.ErrConflict
	}

	// Referencias de consumo: el request puede traerlas; si no, se usan las
	// dependencias declaradas por el producto terminado.
	rawMaterialID := in.RawMaterialID
	if rawMaterialID == nil {
		rawMaterialID = product.RawMaterialID
	}
	masterBatchID := in.MasterBatchID
	if masterBatchID == nil {
		masterBatchID = product.MasterBatchID
	}
	// Sin dependencia declarada no hay pierna de master batch, venga lo que
	// venga en el request (se trata como cero, no como error).
	if product.MasterBatchID == nil {
		masterBatchID = nil
	}

	planned := domaininv.PlanLegs(product, rawMaterialID, masterBatchID, in.ActualPieces, in.RawMaterialBags, in.MasterBatchBags)

	// Cada producto de una pierna debe existir y tener saldo aprovisionado; las
	// piernas de consumo requieren además saldo conocido suficiente. Una
	// violación rechaza la orden completa sin efectos.
	legUnits := make(map[string]string, len(planned))
	for _, leg := range planned {
		legProduct, err := uc.productRepo.GetByID(leg.ProductID)
		if err != nil {
			return nil, err
		}
		if legProduct == nil {
			return nil, domain.ErrNotFound
		}
		legUnits[leg.ProductID] = legProduct.UnitMeasure

		balance, err := uc.balanceRepo.GetByProduct(leg.ProductID)
		if err != nil {
			return nil, err
		}
		if balance == nil {
			return nil, domain.ErrBalanceNotFound
		}
		if leg.Delta.IsNegative() && balance.Quantity.LessThan(leg.Delta.Neg()) {
			return nil, domain.ErrInsufficientStock
		}
	}

	// ── Fase commit: orden + piernas en una transacción envolvente ──
	now := time.Now()
	run := &entity.ProductionRun{
		ID:              uuid.New().String(), // acuña la identidad de transacción de las piernas
		ProductID:       in.ProductID,
		MachineID:       in.MachineID,
		TargetQuantity:  in.TargetQuantity,
		ActualQuantity:  in.ActualPieces,
		WasteQuantity:   in.WasteQuantity,
		RawMaterialID:   rawMaterialID,
		RawMaterialBags: in.RawMaterialBags,
		MasterBatchID:   masterBatchID,
		MasterBatchBags: in.MasterBatchBags,
		Shift:           in.Shift,
		CreatedBy:       userID,
		StartedAt:       in.StartedAt,
		CompletedAt:     in.CompletedAt,
		CreatedAt:       now,
	}
	if product.MasterBatchID == nil {
		run.MasterBatchBags = decimal.Zero
	}

	err = uc.txRunner.RunProduction(ctx, func(
		ledgerRepo repository.LedgerRepository,
		balanceRepo repository.BalanceRepository,
		runRepo repository.ProductionRunRepository,
	) error {
		if err := runRepo.Create(run); err != nil {
			return err
		}
		// Orden fijo: crédito producto terminado, débito materia prima,
		// débito master batch. Si una pierna falla (carrera de stock,
		// timeout de bloqueo, fallo de storage) se revierte todo.
		for _, leg := range planned {
			if _, err := uc.adjustmentUC.ApplyInTx(ledgerRepo, balanceRepo, AdjustmentInput{
				ProductID:           leg.ProductID,
				Delta:               leg.Delta,
				UnitMeasure:         legUnits[leg.ProductID],
				Note:                leg.Note,
				SourceTable:         entity.SourceProductionRun,
				SourceTransactionID: run.ID,
				CreatedBy:           userID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toRunResponse(run), nil
}

// GetByID obtiene una orden de producción.
func (uc *ProductionRunUseCase) GetByID(ctx context.Context, id string) (*dto.ProductionRunResponse, error) {
	run, err := uc.runRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, domain.ErrNotFound
	}
	return toRunResponse(run), nil
}

// List lista órdenes de producción con paginación.
func (uc *ProductionRunUseCase) List(ctx context.Context, limit, offset int) ([]dto.ProductionRunResponse, error) {
	runs, err := uc.runRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, *toRunResponse(r))
	}
	return out, nil
}

// Verify contrasta una orden persistida con sus asientos en el libro. Con la
// transacción envolvente el motor nunca produce subconjuntos; si escrituras
// externas al motor dejaron menos asientos de los esperados, la discrepancia
// se reporta con ErrPartialFailure para conciliación del operador, junto con
// el detalle encontrado.
func (uc *ProductionRunUseCase) Verify(ctx context.Context, runID string) (*dto.VerifyRunResponse, error) {
	run, err := uc.runRepo.GetByID(runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, domain.ErrNotFound
	}

	expected := 0
	if run.ActualQuantity.GreaterThan(decimal.Zero) {
		expected++
	}
	if run.RawMaterialID != nil && run.RawMaterialBags.GreaterThan(decimal.Zero) {
		expected++
	}
	if run.MasterBatchID != nil && run.MasterBatchBags.GreaterThan(decimal.Zero) {
		expected++
	}

	entries, err := uc.ledgerRepo.ListBySourceTransaction(runID)
	if err != nil {
		return nil, err
	}

	resp := &dto.VerifyRunResponse{
		ProductionRunID: runID,
		Consistent:      len(entries) == expected,
		ExpectedLegs:    expected,
		FoundLegs:       len(entries),
		Entries:         make([]dto.LedgerEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.LedgerEntryResponse{
			ID:                  e.ID,
			ProductID:           e.ProductID,
			QuantityChange:      e.QuantityChange,
			UnitMeasure:         e.UnitMeasure,
			SourceTable:         e.SourceTable,
			SourceTransactionID: e.SourceTransactionID,
			Notes:               e.Notes,
			CreatedBy:           e.CreatedBy,
			CreatedAt:           e.CreatedAt,
		})
	}
	if !resp.Consistent {
		return resp, domain.ErrPartialFailure
	}
	return resp, nil
}

func toRunResponse(r *entity.ProductionRun) *dto.ProductionRunResponse {
	if r == nil {
		return nil
	}
	return &dto.ProductionRunResponse{
		ID:              r.ID,
		ProductID:       r.ProductID,
		MachineID:       r.MachineID,
		TargetQuantity:  r.TargetQuantity,
		ActualQuantity:  r.ActualQuantity,
		WasteQuantity:   r.WasteQuantity,
		RawMaterialID:   r.RawMaterialID,
		RawMaterialBags: r.RawMaterialBags,
		MasterBatchID:   r.MasterBatchID,
		MasterBatchBags: r.MasterBatchBags,
		Shift:           r.Shift,
		CreatedBy:       r.CreatedBy,
		StartedAt:       r.StartedAt,
		CompletedAt:     r.CompletedAt,
		CreatedAt:       r.CreatedAt,
	}
}
