package models

import (
	"github.com/shopspring/decimal"
)

// Simulation is the stored envelope of one simulation run.
// Input and Valuation are JSONB documents.
type Simulation struct {
	SimulationID string `db:"simulation_id"`
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Computable   bool   `db:"computable"`
	InputHash    string `db:"input_hash"`
	Input        []byte `db:"input"`
	Valuation    []byte `db:"valuation"`
	AuditFields
}

// SimulationRow is one ledger year of a stored simulation.
// The headline columns are queryable; Detail holds the complete row.
type SimulationRow struct {
	SimulationID  string          `db:"simulation_id"`
	Year          int             `db:"year"`
	NOI           decimal.Decimal `db:"noi"`
	ADS           decimal.Decimal `db:"ads"`
	ATCF          decimal.Decimal `db:"atcf"`
	LoanBalance   decimal.Decimal `db:"loan_balance"`
	TotalCashFlow decimal.Decimal `db:"total_cash_flow"`
	Detail        []byte          `db:"detail"`
}
