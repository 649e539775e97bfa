package service

// CustomerParams are the fields accepted on customer creation. The
// available balance is not a parameter: it always starts equal to the
// monthly quota.
type CustomerParams struct {
	Name         string
	Address      string
	Phone        string
	MonthlyQuota float64
}

// WithdrawalParams describe a withdrawal to record. Date and time are
// never accepted from the caller; the server stamps them at insert.
type WithdrawalParams struct {
	CustomerID int
	Liters     float64
	UserID     int // acting staff user, taken from the session token
}

// WithdrawalFilter narrows the history listing. Dates are inclusive
// "YYYY-MM-DD" bounds; zero values mean no filter.
type WithdrawalFilter struct {
	CustomerID int
	DateFrom   string
	DateTo     string
}

// InventoryParams describe a fuel intake to append.
type InventoryParams struct {
	LitersReceived float64
	Notes          string
	UserID         int
}
