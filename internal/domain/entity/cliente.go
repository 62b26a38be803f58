package entity

import "github.com/shopspring/decimal"

// Tipos de cliente. Solo los mayoristas pueden mantener saldo a crédito.
const (
	ClienteNormal    = "normal"
	ClienteMayorista = "mayorista"
)

// TipoClienteValido valida el valor recibido en la frontera HTTP.
func TipoClienteValido(tipo string) bool {
	return tipo == ClienteNormal || tipo == ClienteMayorista
}

// Cliente representa un cliente. El ID es su identificador fiscal (NIT/cédula), no autogenerado.
type Cliente struct {
	ID            string
	Nombre        string
	Apellidos     string
	Direccion     string
	Telefono      string
	Correo        string
	Tipo          string          // normal | mayorista
	LimiteCredito decimal.Decimal // solo significativo para mayoristas
}
