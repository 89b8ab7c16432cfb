package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol is the Ghanaian cedi sign. Every amount in the system is in
// cedis; no currency code is stored alongside amounts.
const CurrencySymbol = "GH₵"

var printer = message.NewPrinter(language.English)

// RoundTo2Decimals rounds half away from zero to 2 decimal places.
// NaN and infinities are returned unchanged.
func RoundTo2Decimals(value float64) float64 {
	if !isFinite(value) {
		return value
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// FormatCurrency renders amount as a cedi string with thousands grouping and
// exactly two decimals, e.g. GH₵1,234.50.
func FormatCurrency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return CurrencySymbol + "NaN"
	case math.IsInf(amount, 1):
		return CurrencySymbol + "∞"
	case math.IsInf(amount, -1):
		return "-" + CurrencySymbol + "∞"
	}
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + CurrencySymbol + printer.Sprint(number.Decimal(
		d.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// AmountInWords spells out amount in cedis and pesewas. Amounts that are not
// finite have no spoken form and come back as "not a number" or "infinite".
func AmountInWords(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "not a number"
	case math.IsInf(amount, 1):
		return "infinite cedis"
	case math.IsInf(amount, -1):
		return "minus infinite cedis"
	}
	rounded := decimal.NewFromFloat(amount).Round(2)
	d := rounded.Abs()
	cedis := d.IntPart()
	pesewas := d.Sub(decimal.NewFromInt(cedis)).Mul(decimal.NewFromInt(100)).IntPart()

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("minus ")
	}
	b.WriteString(num2words.Convert(int(cedis)))
	if cedis == 1 {
		b.WriteString(" cedi")
	} else {
		b.WriteString(" cedis")
	}
	if pesewas > 0 {
		fmt.Fprintf(&b, " and %s pesewas", num2words.Convert(int(pesewas)))
	}
	return b.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
