package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El motor de inventario distingue entre errores reintentables (ErrLockTimeout)
// y no reintentables (ErrInsufficientStock, ErrInvalidInput); los reintentos son
// responsabilidad del caller, nunca del motor.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrBalanceNotFound    = errors.New("saldo de inventario no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrLockTimeout        = errors.New("tiempo de espera por bloqueo de saldo agotado")
	ErrPartialFailure     = errors.New("orden de producción con asientos parciales en el libro")
)
