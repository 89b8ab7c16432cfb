// Package export renders payment schedules for download.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"rent-assist/domain"
	"rent-assist/service"
)

const scheduleSheet = "Payment Schedule"

var scheduleHeaders = []string{
	"Payment #",
	"Payment Date",
	"Payment Amount",
	"Principal",
	"Interest",
	"Remaining Balance",
	"Discount",
	"Discount Reason",
	"Bonus",
	"Bonus Reason",
}

// WriteScheduleXLSX writes schedule as a single-sheet workbook with one row
// per payment and a totals block below the table.
func WriteScheduleXLSX(w io.Writer, schedule domain.PaymentSchedule) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), scheduleSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, header := range scheduleHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(scheduleSheet, cell, header); err != nil {
			return err
		}
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	for i, e := range schedule.Schedule {
		row := i + 2
		values := []any{
			e.PaymentNumber,
			e.PaymentDate.Format(time.DateOnly),
			service.RoundTo2Decimals(e.PaymentAmount),
			service.RoundTo2Decimals(e.PrincipalPayment),
			service.RoundTo2Decimals(e.InterestPayment),
			service.RoundTo2Decimals(e.RemainingBalance),
			service.RoundTo2Decimals(e.Discount),
			e.DiscountReason,
			service.RoundTo2Decimals(e.Bonus),
			e.BonusReason,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(scheduleSheet, cell, v); err != nil {
				return err
			}
		}
		first, _ := excelize.CoordinatesToCellName(3, row)
		last, _ := excelize.CoordinatesToCellName(7, row)
		if err := f.SetCellStyle(scheduleSheet, first, last, moneyStyle); err != nil {
			return err
		}
	}

	totalsRow := len(schedule.Schedule) + 3
	totals := [][2]any{
		{"Monthly Payment", service.FormatCurrency(schedule.MonthlyPayment)},
		{"Total Payments", service.FormatCurrency(schedule.TotalPayments)},
		{"Total Interest", service.FormatCurrency(schedule.TotalInterest)},
	}
	for i, t := range totals {
		row := totalsRow + i
		if err := f.SetCellValue(scheduleSheet, fmt.Sprintf("A%d", row), t[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(scheduleSheet, fmt.Sprintf("C%d", row), t[1]); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(scheduleSheet, "A", "J", 18); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
