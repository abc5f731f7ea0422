// Package cli holds the rcf command line commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SscSPs/rental_cashflow_app/internal/core/engine"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the rcf command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rcf",
		Short:         "Rental property cash-flow simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Int32("money-places", engine.DefaultRoundingPolicy.MoneyPlaces, "Decimal places for currency amounts (0-4)")

	rootCmd.AddCommand(
		SimulateCmd(),
		AmortizeCmd(),
	)

	return rootCmd
}

// newEngine builds an engine with the rounding requested on the command line.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	places, _ := cmd.Flags().GetInt32("money-places")
	if places < 0 || places > 4 {
		return nil, fmt.Errorf("--money-places must be between 0 and 4, got %d", places)
	}
	policy := engine.DefaultRoundingPolicy
	policy.MoneyPlaces = places
	return engine.New(policy), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
