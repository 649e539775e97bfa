package models

// InventoryEntry is one intake snapshot. AvailableLiters carries the
// running plant total after the intake; the latest row is the current
// inventory level.
type InventoryEntry struct {
	ID              int     `json:"id"`
	LitersReceived  float64 `json:"litros_ingresados"`
	AvailableLiters float64 `json:"litros_disponibles"`
	ReceivedAt      string  `json:"fecha_ingreso"`
	UserID          int     `json:"usuario_id"`
	Notes           string  `json:"observaciones,omitempty"`
	UserName        string  `json:"usuario_nombre,omitempty"` // filled on history reads
}
