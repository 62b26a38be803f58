package dto

// CrearProveedorRequest alta de proveedor.
type CrearProveedorRequest struct {
	ID               string `json:"proveedor_id"`
	RazonSocial      string `json:"razon_social"`
	Direccion        string `json:"direccion"`
	Telefono         string `json:"telefono"`
	Correo           string `json:"correo_electronico"`
	CondicionesPago  string `json:"condiciones_pago"`
	PlazoCreditoDias int    `json:"plazo_credito_dias"`
	Representante    string `json:"representante"`
}

// ActualizarProveedorRequest actualización de proveedor por ID.
type ActualizarProveedorRequest struct {
	RazonSocial      string `json:"razon_social"`
	Direccion        string `json:"direccion"`
	Telefono         string `json:"telefono"`
	Correo           string `json:"correo_electronico"`
	CondicionesPago  string `json:"condiciones_pago"`
	PlazoCreditoDias int    `json:"plazo_credito_dias"`
	Representante    string `json:"representante"`
}

// ProveedorResponse proveedor en respuestas.
type ProveedorResponse struct {
	ID               string `json:"proveedor_id"`
	RazonSocial      string `json:"razon_social"`
	Direccion        string `json:"direccion"`
	Telefono         string `json:"telefono"`
	Correo           string `json:"correo_electronico"`
	CondicionesPago  string `json:"condiciones_pago"`
	PlazoCreditoDias int    `json:"plazo_credito_dias"`
	Representante    string `json:"representante"`
}
