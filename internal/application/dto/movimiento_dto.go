package dto

import "github.com/shopspring/decimal"

// MovimientoResponse movimiento financiero pendiente en listados.
type MovimientoResponse struct {
	MovimientoID     int64           `json:"movimiento_id"`
	Tipo             string          `json:"tipo_movimiento"`
	DocumentoID      int64           `json:"documento_id"`
	Contraparte      string          `json:"contraparte"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	SaldoPendiente   decimal.Decimal `json:"saldo_pendiente"`
	Estado           string          `json:"estado"`
}

// AuditoriaResponse registro de auditoría en listados.
type AuditoriaResponse struct {
	RegistroID int64  `json:"registro_id"`
	Usuario    string `json:"usuario"`
	Operacion  string `json:"operacion"`
	Motivo     string `json:"motivo"`
	Detalle    string `json:"detalle"`
	Fecha      string `json:"fecha"`
}
