package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrStockInsuficiente     = errors.New("stock insuficiente")
	ErrDocumentoCerrado      = errors.New("el documento ya no está abierto")
	ErrClienteNoMayorista    = errors.New("solo clientes mayoristas pueden comprar a crédito")
	ErrLimiteCreditoExcedido = errors.New("límite de crédito excedido")
	ErrPagoInsuficiente      = errors.New("el monto recibido no cubre el total")
)
