package repository

import "github.com/dmolina/planta-api/internal/domain/entity"

// BalanceRepository define el puerto para el saldo de stock por producto.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y es la única vía válida
// para leer un saldo que va a mutarse; devuelve ErrBalanceNotFound si el
// producto no tiene saldo aprovisionado y ErrLockTimeout si la espera por el
// bloqueo supera el límite configurado.
type BalanceRepository interface {
	Create(balance *entity.StockBalance) error
	GetByProduct(productID string) (*entity.StockBalance, error)
	GetForUpdate(productID string) (*entity.StockBalance, error)
	UpdateQuantity(balance *entity.StockBalance) error
}
