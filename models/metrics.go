package models

// FinancialMetrics is a derived view over the full request collection.
// Nothing here is stored; every figure is recomputed from the requests on
// each access.
type FinancialMetrics struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalProfit           float64 `json:"totalProfit"`
	PendingPayouts        float64 `json:"pendingPayouts"`
	TotalPayoutsMade      float64 `json:"totalPayoutsMade"`
	PendingClientPayments float64 `json:"pendingClientPayments"`
	FailedTransactions    int     `json:"failedTransactions"`
	TotalTransactions     int     `json:"totalTransactions"`
}
