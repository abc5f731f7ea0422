package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/rental_cashflow_app/internal/apperrors"
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_cashflow_app/internal/core/ports/repositories"
	"github.com/SscSPs/rental_cashflow_app/internal/models"
	"github.com/SscSPs/rental_cashflow_app/internal/utils/mapping"
	"github.com/SscSPs/rental_cashflow_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

const simulationColumns = `simulation_id, user_id, name, computable, input_hash, input, valuation,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxSimulationRepository struct {
	BaseRepository
}

// newPgxSimulationRepository creates a new repository for stored simulations.
func newPgxSimulationRepository(pool *pgxpool.Pool) portsrepo.SimulationRepositoryWithTx {
	return &PgxSimulationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSimulationRepository implements portsrepo.SimulationRepositoryWithTx
var _ portsrepo.SimulationRepositoryWithTx = (*PgxSimulationRepository)(nil)

// SaveSimulation inserts the envelope and its ledger rows in one transaction.
func (r *PgxSimulationRepository) SaveSimulation(ctx context.Context, simulation domain.Simulation) error {
	modelSim, modelRows, err := mapping.ToModelSimulation(simulation)
	if err != nil {
		return err
	}

	return r.InTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO simulations (` + simulationColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
		`
		_, err := tx.Exec(ctx, query,
			modelSim.SimulationID,
			modelSim.UserID,
			modelSim.Name,
			modelSim.Computable,
			modelSim.InputHash,
			modelSim.Input,
			modelSim.Valuation,
			modelSim.CreatedAt,
			modelSim.CreatedBy,
			modelSim.LastUpdatedAt,
			modelSim.LastUpdatedBy,
			modelSim.Version,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: simulation with ID %s already exists", apperrors.ErrDuplicate, modelSim.SimulationID)
			}
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert simulation "+modelSim.SimulationID, err)
		}

		if len(modelRows) > 0 {
			batch := &pgx.Batch{}
			rowQuery := `
				INSERT INTO simulation_rows (simulation_id, year, noi, ads, atcf, loan_balance, total_cash_flow, detail)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
			`
			for _, row := range modelRows {
				batch.Queue(rowQuery,
					row.SimulationID,
					row.Year,
					row.NOI,
					row.ADS,
					row.ATCF,
					row.LoanBalance,
					row.TotalCashFlow,
					row.Detail,
				)
			}
			// Close the batch results to surface errors from each insert
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert ledger rows for simulation "+modelSim.SimulationID, err)
			}
		}

		return nil
	})
}

// FindSimulationByID retrieves a simulation and its ledger.
func (r *PgxSimulationRepository) FindSimulationByID(ctx context.Context, simulationID string) (*domain.Simulation, error) {
	query := `SELECT ` + simulationColumns + ` FROM simulations WHERE simulation_id = $1;`

	modelSim, err := scanSimulation(r.Pool.QueryRow(ctx, query, simulationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find simulation by ID %s: %w", simulationID, err)
	}

	rows, err := r.findRows(ctx, simulationID)
	if err != nil {
		return nil, err
	}

	sim, err := mapping.ToDomainSimulation(modelSim, rows)
	if err != nil {
		return nil, err
	}
	return &sim, nil
}

// ListSimulationsByUser retrieves a page of the user's simulations, newest first.
// Listed simulations carry their valuation but not their ledger rows.
func (r *PgxSimulationRepository) ListSimulationsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Simulation, *string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	args := []interface{}{userID}
	filterClause := `WHERE user_id = $1`
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr))
		}
		// Tuple comparison keeps the cursor stable for equal timestamps
		filterClause += ` AND (created_at, simulation_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}
	args = append(args, fetchLimit)

	query := `SELECT ` + simulationColumns + ` FROM simulations ` + filterClause +
		` ORDER BY created_at DESC, simulation_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query simulations for user "+userID, err)
	}
	defer rows.Close()

	modelSims := make([]models.Simulation, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanSimulation(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan simulation row for user "+userID, scanErr)
		}
		modelSims = append(modelSims, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating simulation rows for user "+userID, err)
	}

	var nextTokenVal *string
	if len(modelSims) > limit {
		// The token points to the last item included in this page.
		last := modelSims[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.SimulationID)
		nextTokenVal = &token
		modelSims = modelSims[:limit]
	}

	sims := make([]domain.Simulation, len(modelSims))
	for i, m := range modelSims {
		sim, err := mapping.ToDomainSimulation(m, nil)
		if err != nil {
			return nil, nil, err
		}
		sims[i] = sim
	}
	return sims, nextTokenVal, nil
}

// DeleteSimulation removes a simulation. Ledger rows go with it (ON DELETE CASCADE).
func (r *PgxSimulationRepository) DeleteSimulation(ctx context.Context, simulationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM simulations WHERE simulation_id = $1;`, simulationID)
	if err != nil {
		return fmt.Errorf("failed to delete simulation %s: %w", simulationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSimulationRepository) findRows(ctx context.Context, simulationID string) ([]models.SimulationRow, error) {
	query := `
		SELECT simulation_id, year, noi, ads, atcf, loan_balance, total_cash_flow, detail
		FROM simulation_rows
		WHERE simulation_id = $1
		ORDER BY year;
	`
	rows, err := r.Pool.Query(ctx, query, simulationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger of simulation %s: %w", simulationID, err)
	}
	defer rows.Close()

	out := []models.SimulationRow{}
	for rows.Next() {
		var m models.SimulationRow
		if err := rows.Scan(
			&m.SimulationID,
			&m.Year,
			&m.NOI,
			&m.ADS,
			&m.ATCF,
			&m.LoanBalance,
			&m.TotalCashFlow,
			&m.Detail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row of simulation %s: %w", simulationID, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger of simulation %s: %w", simulationID, err)
	}
	return out, nil
}

func scanSimulation(row pgx.Row) (models.Simulation, error) {
	var m models.Simulation
	err := row.Scan(
		&m.SimulationID,
		&m.UserID,
		&m.Name,
		&m.Computable,
		&m.InputHash,
		&m.Input,
		&m.Valuation,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}
