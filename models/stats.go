package models

import "time"

// IncomeStats summarizes completed-appointment income over a period.
type IncomeStats struct {
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	TotalIncome    float64   `json:"totalIncome"`
	CompletedCount int       `json:"completedCount"`
}
