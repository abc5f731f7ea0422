package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/SscSPs/rental_cashflow_app/internal/models"
)

// ToModelSimulation converts a domain Simulation into its envelope and ledger rows
func ToModelSimulation(d domain.Simulation) (models.Simulation, []models.SimulationRow, error) {
	input, err := json.Marshal(d.Input)
	if err != nil {
		return models.Simulation{}, nil, fmt.Errorf("failed to encode simulation input: %w", err)
	}
	valuation, err := json.Marshal(d.Result.Valuation)
	if err != nil {
		return models.Simulation{}, nil, fmt.Errorf("failed to encode simulation valuation: %w", err)
	}

	rows := make([]models.SimulationRow, len(d.Result.Rows))
	for i, r := range d.Result.Rows {
		detail, err := json.Marshal(r)
		if err != nil {
			return models.Simulation{}, nil, fmt.Errorf("failed to encode ledger year %d: %w", r.Year, err)
		}
		rows[i] = models.SimulationRow{
			SimulationID:  d.SimulationID,
			Year:          r.Year,
			NOI:           r.NOI,
			ADS:           r.ADS,
			ATCF:          r.ATCF,
			LoanBalance:   r.LoanBalance,
			TotalCashFlow: r.TotalCashFlow,
			Detail:        detail,
		}
	}

	return models.Simulation{
		SimulationID: d.SimulationID,
		UserID:       d.UserID,
		Name:         d.Name,
		Computable:   d.Result.Computable,
		InputHash:    d.InputHash,
		Input:        input,
		Valuation:    valuation,
		AuditFields:  models.AuditFields(d.AuditFields),
	}, rows, nil
}

// ToDomainSimulation rebuilds a domain Simulation from its envelope and ledger rows.
// rows must be ordered by year.
func ToDomainSimulation(m models.Simulation, rows []models.SimulationRow) (domain.Simulation, error) {
	d := domain.Simulation{
		SimulationID: m.SimulationID,
		UserID:       m.UserID,
		Name:         m.Name,
		InputHash:    m.InputHash,
		AuditFields:  domain.AuditFields(m.AuditFields),
	}
	if err := json.Unmarshal(m.Input, &d.Input); err != nil {
		return domain.Simulation{}, fmt.Errorf("failed to decode input of simulation %s: %w", m.SimulationID, err)
	}
	if len(m.Valuation) > 0 {
		if err := json.Unmarshal(m.Valuation, &d.Result.Valuation); err != nil {
			return domain.Simulation{}, fmt.Errorf("failed to decode valuation of simulation %s: %w", m.SimulationID, err)
		}
	}

	d.Result.Computable = m.Computable
	d.Result.Rows = make([]domain.YearlyCashFlowRow, len(rows))
	for i, r := range rows {
		if err := json.Unmarshal(r.Detail, &d.Result.Rows[i]); err != nil {
			return domain.Simulation{}, fmt.Errorf("failed to decode ledger year %d of simulation %s: %w", r.Year, m.SimulationID, err)
		}
	}
	return d, nil
}
