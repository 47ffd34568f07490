package model

// AccountStats aggregates per-user figures reported on the home endpoint.
type AccountStats struct {
	TotalTransactions int
}
