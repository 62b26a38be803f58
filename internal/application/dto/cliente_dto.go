package dto

import "github.com/shopspring/decimal"

// CrearClienteRequest alta de cliente. El ID es el NIT/cédula (no autogenerado).
type CrearClienteRequest struct {
	ID            string          `json:"cliente_id"`
	Nombre        string          `json:"nombre"`
	Apellidos     string          `json:"apellidos"`
	Direccion     string          `json:"direccion"`
	Telefono      string          `json:"telefono"`
	Correo        string          `json:"correo_electronico"`
	Tipo          string          `json:"tipo_cliente"`
	LimiteCredito decimal.Decimal `json:"limite_credito"`
}

// ActualizarClienteRequest actualización de cliente por ID.
type ActualizarClienteRequest struct {
	Nombre        string          `json:"nombre"`
	Apellidos     string          `json:"apellidos"`
	Direccion     string          `json:"direccion"`
	Telefono      string          `json:"telefono"`
	Correo        string          `json:"correo_electronico"`
	Tipo          string          `json:"tipo_cliente"`
	LimiteCredito decimal.Decimal `json:"limite_credito"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID            string          `json:"cliente_id"`
	Nombre        string          `json:"nombre"`
	Apellidos     string          `json:"apellidos"`
	Direccion     string          `json:"direccion"`
	Telefono      string          `json:"telefono"`
	Correo        string          `json:"correo_electronico"`
	Tipo          string          `json:"tipo_cliente"`
	LimiteCredito decimal.Decimal `json:"limite_credito"`
}
