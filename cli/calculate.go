package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"rent-assist/domain"
	"rent-assist/export"
	"rent-assist/repository"
	"rent-assist/service"
)

func QuoteCmd() *cobra.Command {
	var (
		rent         float64
		term         int
		landlordDate string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Show the upfront fees for a monthly rent",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := civil.ParseDate(landlordDate)
			if err != nil {
				return fmt.Errorf("invalid --landlord-date: %w", err)
			}

			quote, err := service.NewFeeService(nil).Quote(domain.QuoteInput{
				MonthlyRent:         rent,
				PaymentTerm:         term,
				LandlordPaymentDate: date,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Service fee\t%s\n", service.FormatCurrency(quote.Fees.ServiceFee))
			fmt.Fprintf(w, "Document upload fee\t%s\n", service.FormatCurrency(quote.Fees.DocumentUploadFee))
			fmt.Fprintf(w, "Property inspection fee\t%s\n", service.FormatCurrency(quote.Fees.PropertyInspectionFee))
			fmt.Fprintf(w, "Refundable rent security\t%s\n", service.FormatCurrency(quote.Fees.RefundableRentSecurity))
			if quote.ProratedRent > 0 {
				fmt.Fprintf(w, "Prorated rent\t%s\n", service.FormatCurrency(quote.ProratedRent))
			}
			fmt.Fprintf(w, "Total\t%s\n", quote.TotalFormatted)
			fmt.Fprintf(w, "\t(%s)\n", quote.TotalInWords)
			fmt.Fprintf(w, "First payment\t%s\n", quote.FirstPaymentDate)
			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&rent, "rent", 0, "monthly rent in cedis")
	cmd.Flags().IntVar(&term, "term", service.DefaultPaymentTerm, "payment term in months")
	cmd.Flags().StringVar(&landlordDate, "landlord-date", civil.DateOf(time.Now()).String(), "landlord payment date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("rent")
	return cmd
}

func ScheduleCmd() *cobra.Command {
	var (
		amount float64
		rate   float64
		months int
		start  string
		xlsx   string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print or export an amortization schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate := time.Now()
			if start != "" {
				d, err := civil.ParseDate(start)
				if err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				startDate = d.In(time.UTC)
			}

			loanService := service.NewLoanService(
				repository.NewScheduleRepositoryMemory(),
				repository.NewMemoryCache(),
				nil, nil, nil,
			)
			record, err := loanService.GenerateSchedule(cmd.Context(), domain.ScheduleInput{
				TotalAmount:  amount,
				InterestRate: rate,
				Months:       months,
				StartDate:    &startDate,
			})
			if err != nil {
				return err
			}

			if xlsx != "" {
				if err := writeScheduleFile(xlsx, record.Result); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d payments to %s\n", len(record.Result.Schedule), xlsx)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "#\tDate\tPayment\tPrincipal\tInterest\tBalance\t")
			for _, e := range record.Result.Schedule {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
					e.PaymentNumber,
					e.PaymentDate.Format(time.DateOnly),
					service.FormatCurrency(e.PaymentAmount),
					service.FormatCurrency(e.PrincipalPayment),
					service.FormatCurrency(e.InterestPayment),
					service.FormatCurrency(e.RemainingBalance),
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nMonthly payment %s, total %s, interest %s\n",
				service.FormatCurrency(record.Result.MonthlyPayment),
				service.FormatCurrency(record.Result.TotalPayments),
				service.FormatCurrency(record.Result.TotalInterest),
			)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount financed in cedis")
	cmd.Flags().Float64Var(&rate, "rate", service.AnnualInterestRate, "annual interest rate in percent")
	cmd.Flags().IntVar(&months, "months", service.DefaultPaymentTerm, "term in months")
	cmd.Flags().StringVar(&start, "start", "", "schedule start date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "write the schedule to this xlsx file instead of printing it")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func LateFeeCmd() *cobra.Command {
	var (
		amount float64
		day    int
	)

	cmd := &cobra.Command{
		Use:   "late-fee",
		Short: "Show the late payment penalty for a day of the month",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := service.NewFeeService(nil).LateFee(domain.LateFeeInput{
				Amount:     amount,
				DayOfMonth: day,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Day %d: penalty %s (%.0f%%), total due %s\n",
				result.DayOfMonth,
				service.FormatCurrency(result.Penalty),
				result.Rate*100,
				result.TotalFormatted,
			)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "payment amount in cedis")
	cmd.Flags().IntVar(&day, "day", 0, "day of the month, defaults to today")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

// writeScheduleFile reports a failed close, since that is where a short
// write to disk surfaces.
func writeScheduleFile(path string, schedule domain.PaymentSchedule) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	return export.WriteScheduleXLSX(f, schedule)
}
