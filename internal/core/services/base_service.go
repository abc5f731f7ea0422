package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/rental_cashflow_app/internal/apperrors"
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/SscSPs/rental_cashflow_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeOwner checks that the simulation belongs to the user
func (s *BaseService) AuthorizeOwner(ctx context.Context, simulation *domain.Simulation, userID string) error {
	if simulation.UserID == userID {
		return nil
	}
	s.LogDebug(ctx, "User does not own simulation",
		slog.String("user_id", userID),
		slog.String("simulation_id", simulation.SimulationID))
	return fmt.Errorf("%w: simulation %s belongs to another user", apperrors.ErrForbidden, simulation.SimulationID)
}
