package models

// Customer is a gas-delivery account with a monthly liter quota.
// AvailableLiters mirrors MonthlyQuota at creation and is not maintained
// as a running balance by any endpoint. Active=false is a soft delete:
// the row persists but is excluded from every read path.
type Customer struct {
	ID              int     `json:"id"`
	Name            string  `json:"nombre"`
	Address         string  `json:"direccion"`
	Phone           string  `json:"telefono"`
	MonthlyQuota    float64 `json:"litros_mes"`
	AvailableLiters float64 `json:"litros_disponibles"`
	Active          bool    `json:"activo"`
}

// CustomerDetail is the single-customer view with the current-month
// withdrawal aggregate.
type CustomerDetail struct {
	Customer
	WithdrawnThisMonth float64 `json:"litros_retirados_mes"`
}
