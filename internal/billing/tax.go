package billing

import "github.com/shopspring/decimal"

// GST rates applied on invoice documents: 9% central + 9% state.
var (
	cgstRate = decimal.NewFromFloat(0.09)
	sgstRate = decimal.NewFromFloat(0.09)
)

// TaxBreakdown is the GST split for a single line amount, rounded to two
// decimal places. It appears only on rendered invoice documents; stored
// invoice totals never include tax.
type TaxBreakdown struct {
	CGST  decimal.Decimal `json:"cgst"`
	SGST  decimal.Decimal `json:"sgst"`
	Gross decimal.Decimal `json:"gross"`
}

// ComputeLineTax applies CGST and SGST to a line amount. Gross is the line
// amount plus both tax components.
func ComputeLineTax(amount decimal.Decimal) TaxBreakdown {
	cgst := amount.Mul(cgstRate).Round(2)
	sgst := amount.Mul(sgstRate).Round(2)
	return TaxBreakdown{
		CGST:  cgst,
		SGST:  sgst,
		Gross: amount.Add(cgst).Add(sgst),
	}
}
