package repository

import "github.com/dmolina/planta-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(category string, limit, offset int) ([]*entity.Product, error)
}
