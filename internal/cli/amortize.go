package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/SscSPs/rental_cashflow_app/internal/core/services"
	"github.com/SscSPs/rental_cashflow_app/internal/dto"
	"github.com/SscSPs/rental_cashflow_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func AmortizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Print the yearly repayment schedule of a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			principalStr, _ := cmd.Flags().GetString("principal")
			rateStr, _ := cmd.Flags().GetString("rate")
			years, _ := cmd.Flags().GetInt("years")
			method, _ := cmd.Flags().GetString("method")
			asJSON, _ := cmd.Flags().GetBool("json")

			principal, err := decimal.NewFromString(principalStr)
			if err != nil {
				return fmt.Errorf("invalid --principal %q: %v", principalStr, err)
			}
			rate, err := decimal.NewFromString(rateStr)
			if err != nil {
				return fmt.Errorf("invalid --rate %q: %v", rateStr, err)
			}

			req := dto.AmortizationRequest{Principal: principal, AnnualRate: rate, TermYears: years, Method: method}
			v, err := dto.NewValidator()
			if err != nil {
				return err
			}
			if err := v.Struct(req); err != nil {
				return fmt.Errorf("invalid loan terms: %v", err)
			}

			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}
			rows := services.NewToolsService(eng).AmortizationSchedule(req.ToDomain())
			res := dto.ToAmortizationResponse(rows)

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}

			places := eng.Policy().MoneyPlaces
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "Year\tOpening\tInterest\tPrincipal\tClosing\tDebt service\t")
			for _, row := range res.Rows {
				printScheduleRow(tw, row, places)
			}
			fmt.Fprintf(tw, "Total\t\t%s\t%s\t\t%s\t\n",
				utils.FormatMoney(res.TotalInterest, places),
				utils.FormatMoney(res.TotalPrincipal, places),
				utils.FormatMoney(res.TotalInterest.Add(res.TotalPrincipal), places))
			return tw.Flush()
		},
	}

	cmd.Flags().String("principal", "", "Loan principal")
	cmd.Flags().String("rate", "0", "Nominal annual rate as a fraction (0.023 = 2.3%)")
	cmd.Flags().Int("years", 0, "Term in years")
	cmd.Flags().String("method", string(domain.EqualPayment), "EQUAL_PAYMENT or EQUAL_PRINCIPAL")
	cmd.Flags().Bool("json", false, "Print the schedule as JSON")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func printScheduleRow(tw *tabwriter.Writer, row domain.AmortizationRow, places int32) {
	fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
		row.Year,
		utils.FormatMoney(row.OpeningBalance, places),
		utils.FormatMoney(row.InterestPaid, places),
		utils.FormatMoney(row.PrincipalPaid, places),
		utils.FormatMoney(row.ClosingBalance, places),
		utils.FormatMoney(row.DebtService, places))
}
