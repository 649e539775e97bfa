package models

// Withdrawal is a recorded liter-removal event. Date ("YYYY-MM-DD") and
// Time ("HH:MM:SS") are assigned by the server at insertion, never
// client-supplied. Immutable once created.
type Withdrawal struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"cliente_id"`
	Date       string  `json:"fecha"`
	Time       string  `json:"hora"`
	Liters     float64 `json:"litros"`
	UserID     int     `json:"usuario_id"`
}

// WithdrawalRecord is a withdrawal joined with the customer and the
// staff user who recorded it, as returned by the history listing.
type WithdrawalRecord struct {
	Withdrawal
	CustomerName string `json:"cliente_nombre"`
	UserName     string `json:"usuario_nombre"`
}
