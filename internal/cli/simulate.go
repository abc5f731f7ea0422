package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/SscSPs/rental_cashflow_app/internal/core/services"
	"github.com/SscSPs/rental_cashflow_app/internal/dto"
	"github.com/SscSPs/rental_cashflow_app/internal/scenario"
	"github.com/SscSPs/rental_cashflow_app/internal/utils"
	"github.com/spf13/cobra"
)

func SimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a simulation from a scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			asJSON, _ := cmd.Flags().GetBool("json")

			file, err := scenario.Load(path)
			if err != nil {
				return err
			}

			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}
			// No repository: the CLI only runs simulations, it never stores them
			svc := services.NewSimulationService(eng, nil, services.WithMaxScenarios(len(file.Scenarios)))

			base := file.Input.ToDomain()
			var outcomes []domain.ScenarioOutcome
			if len(file.Scenarios) == 0 {
				result, err := svc.RunSimulation(cmd.Context(), base)
				if err != nil {
					return fmt.Errorf("simulation failed: %w", err)
				}
				outcomes = []domain.ScenarioOutcome{{Name: services.BaseScenarioName, Result: *result}}
			} else {
				req := dto.CompareScenariosRequest{Scenarios: file.Scenarios}
				outcomes, err = svc.CompareScenarios(cmd.Context(), base, req.ToDomainScenarios())
				if err != nil {
					return fmt.Errorf("scenario comparison failed: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, dto.ToCompareScenariosResponse(outcomes))
			}

			policy := eng.Policy()
			if file.Name != "" {
				fmt.Fprintf(out, "%s\n", file.Name)
			}
			for _, o := range outcomes {
				printOutcome(out, o, policy.MoneyPlaces, policy.RatePlaces)
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "Scenario file (YAML or JSON)")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func printOutcome(out io.Writer, o domain.ScenarioOutcome, moneyPlaces, ratePlaces int32) {
	fmt.Fprintf(out, "\n== %s ==\n", o.Name)
	if !o.Result.Computable {
		fmt.Fprintln(out, "not computable: check price, holding period and loan terms")
		return
	}

	money := func(d domain.YearlyCashFlowRow) []interface{} {
		return []interface{}{
			d.Year,
			utils.FormatMoney(d.EGI, moneyPlaces),
			utils.FormatMoney(d.OPEX, moneyPlaces),
			utils.FormatMoney(d.NOI, moneyPlaces),
			utils.FormatMoney(d.ADS, moneyPlaces),
			utils.FormatMoney(d.BTCF, moneyPlaces),
			utils.FormatMoney(d.IncomeTax, moneyPlaces),
			utils.FormatMoney(d.ATCF, moneyPlaces),
			utils.FormatMoney(d.LoanBalance, moneyPlaces),
			utils.FormatRatio(d.DSCR, 2),
		}
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tEGI\tOPEX\tNOI\tADS\tBTCF\tTax\tATCF\tLoan balance\tDSCR\t")
	for _, row := range o.Result.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n", money(row)...)
	}
	_ = tw.Flush()

	if n := len(o.Result.Rows); n > 0 {
		if sale := o.Result.Rows[n-1].Sale; sale != nil {
			fmt.Fprintf(out, "Sale: price %s, costs %s, capital gains tax %s, net proceeds %s\n",
				utils.FormatMoney(sale.SalePrice, moneyPlaces),
				utils.FormatMoney(sale.SaleCosts, moneyPlaces),
				utils.FormatMoney(sale.CapitalGainsTax, moneyPlaces),
				utils.FormatMoney(sale.NetProceeds, moneyPlaces))
		}
	}

	v := o.Result.Valuation
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "IRR\t%s\tNPV\t%s\n", utils.FormatRate(v.IRR, ratePlaces), utils.FormatMoney(v.NPV, moneyPlaces))
	fmt.Fprintf(tw, "Cap rate\t%s\tDCF value\t%s\n", utils.FormatRate(v.CapRate, ratePlaces), utils.FormatMoney(v.DCFValue, moneyPlaces))
	fmt.Fprintf(tw, "CCR\t%s\tGross yield\t%s\n", utils.FormatRate(v.CCR, ratePlaces), utils.FormatRate(v.GrossYield, ratePlaces))
	fmt.Fprintf(tw, "DSCR\t%s\tMin DSCR\t%s\n", utils.FormatRatio(v.DSCR, 2), utils.FormatRatio(v.MinDSCR, 2))
	fmt.Fprintf(tw, "ROI\t%s\tPayback (years)\t%s\n", utils.FormatRate(v.ROI, ratePlaces), utils.FormatRatio(v.PaybackPeriod, 1))
	fmt.Fprintf(tw, "Equity\t%s\tTotal investment\t%s\n", utils.FormatMoney(v.InitialEquity, moneyPlaces), utils.FormatMoney(v.TotalInvestment, moneyPlaces))
	_ = tw.Flush()
}
