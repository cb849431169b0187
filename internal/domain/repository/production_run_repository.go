package repository

import "github.com/dmolina/planta-api/internal/domain/entity"

// ProductionRunRepository define el puerto de persistencia para órdenes de producción.
// Las órdenes son inmutables una vez creadas (ancla de los asientos del libro).
type ProductionRunRepository interface {
	Create(run *entity.ProductionRun) error
	GetByID(id string) (*entity.ProductionRun, error)
	List(limit, offset int) ([]*entity.ProductionRun, error)
}
