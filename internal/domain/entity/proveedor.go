package entity

// Proveedor representa un proveedor de mercadería.
type Proveedor struct {
	ID               string
	RazonSocial      string
	Direccion        string
	Telefono         string
	Correo           string
	CondicionesPago  string
	PlazoCreditoDias int // días de crédito otorgados por el proveedor
	Representante    string
}
