package models

// DashboardStats are the aggregate totals shown on the admin dashboard.
type DashboardStats struct {
	TotalCustomers  int     `json:"totalClientes"`
	LitersDelivered float64 `json:"totalLitrosEntregados"`
	InventoryLiters float64 `json:"inventarioActual"`
}
