package entity

// Categoria agrupa productos. ID generado por secuencia.
type Categoria struct {
	ID     int64
	Nombre string
}
