package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmolina/planta-api/internal/application/dto"
	"github.com/dmolina/planta-api/internal/domain"
	"github.com/dmolina/planta-api/internal/domain/entity"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Crear un producto
// aprovisiona también su saldo de stock en 0; desde ese momento el saldo solo
// lo muta el servicio de ajustes.
type ProductUseCase struct {
	repo        repository.ProductRepository
	balanceRepo repository.BalanceRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, balanceRepo repository.BalanceRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, balanceRepo: balanceRepo}
}

// Create crea un producto y su saldo inicial (cantidad 0).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.UnitMeasure == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderLevel.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Category:      in.Category,
		UnitMeasure:   in.UnitMeasure,
		RawMaterialID: in.RawMaterialID,
		MasterBatchID: in.MasterBatchID,
		ReorderLevel:  in.ReorderLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}

	balance := &entity.StockBalance{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		Quantity:    decimal.Zero,
		UnitMeasure: product.UnitMeasure,
		UpdatedAt:   now,
	}
	if err := uc.balanceRepo.Create(balance); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto con lista fija de campos editables.
// ID, SKU y categoría son inmutables; el saldo se mueve solo vía ajustes.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.UnitMeasure != nil {
		product.UnitMeasure = *in.UnitMeasure
	}
	if in.RawMaterialID != nil {
		product.RawMaterialID = in.RawMaterialID
	}
	if in.MasterBatchID != nil {
		product.MasterBatchID = in.MasterBatchID
	}
	if in.ReorderLevel != nil {
		if in.ReorderLevel.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderLevel = *in.ReorderLevel
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación, opcionalmente por categoría.
func (uc *ProductUseCase) List(category string, limit, offset int) (*dto.ProductListResponse, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Category:      p.Category,
		UnitMeasure:   p.UnitMeasure,
		RawMaterialID: p.RawMaterialID,
		MasterBatchID: p.MasterBatchID,
		ReorderLevel:  p.ReorderLevel,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
