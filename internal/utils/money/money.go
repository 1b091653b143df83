package money

import (
	"github.com/shopspring/decimal"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

var pointFive = decimal.NewFromFloat(0.5)

// RoundHalfUp rounds to 2 decimals, rounding up whenever the 3rd decimal digit
// is 5 or more. This is the document's rounding convention, applied to every
// monetary field independently. It is not banker's rounding.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	hundred := d.Shift(2)
	frac := hundred.Sub(hundred.Floor())
	if frac.GreaterThanOrEqual(pointFive) {
		return hundred.Ceil().Shift(-2)
	}
	return d.Round(2)
}

// Totals is the full set of computed monetary fields for a quotation.
type Totals struct {
	Items           []domain.QuotationItem
	Amount          decimal.Decimal
	Discount        decimal.Decimal
	Fee             decimal.Decimal
	CalFee          decimal.Decimal
	TotalBeforeFee  decimal.Decimal
	Total           decimal.Decimal
	AmountBeforeTax decimal.Decimal
	VAT             decimal.Decimal
	NetAmount       decimal.Decimal
}

// CalculateTotals computes every derived monetary field from the line items,
// discount and fee. vatRate is a fraction, e.g. 0.07.
//
//	item.amount      = round(unit * unitPrice)
//	totalBeforeFee   = sum(item.amount)
//	calFee           = round(fee)            (fee is a flat amount)
//	total            = round(totalBeforeFee + calFee)
//	amountBeforeTax  = round(total - discount)
//	vat              = round(amountBeforeTax * vatRate)
//	netAmount        = round(amountBeforeTax + vat)
func CalculateTotals(items []domain.QuotationItem, discount, fee, vatRate decimal.Decimal) Totals {
	processed := make([]domain.QuotationItem, len(items))
	totalBeforeFee := decimal.Zero
	for i, item := range items {
		item.UnitPrice = RoundHalfUp(item.UnitPrice)
		item.Amount = RoundHalfUp(item.Unit.Mul(item.UnitPrice))
		totalBeforeFee = totalBeforeFee.Add(item.Amount)
		processed[i] = item
	}

	calFee := RoundHalfUp(fee)
	total := RoundHalfUp(totalBeforeFee.Add(calFee))
	amountBeforeTax := RoundHalfUp(total.Sub(discount))
	vat := RoundHalfUp(amountBeforeTax.Mul(vatRate))
	netAmount := RoundHalfUp(amountBeforeTax.Add(vat))

	return Totals{
		Items:           processed,
		Amount:          totalBeforeFee,
		Discount:        RoundHalfUp(discount),
		Fee:             RoundHalfUp(fee),
		CalFee:          calFee,
		TotalBeforeFee:  totalBeforeFee,
		Total:           total,
		AmountBeforeTax: amountBeforeTax,
		VAT:             vat,
		NetAmount:       netAmount,
	}
}

// ApplyTotals writes the computed totals onto a quotation.
func ApplyTotals(q *domain.Quotation, t Totals) {
	q.Items = t.Items
	q.Amount = t.Amount
	q.Discount = t.Discount
	q.Fee = t.Fee
	q.CalFee = t.CalFee
	q.TotalBeforeFee = t.TotalBeforeFee
	q.Total = t.Total
	q.AmountBeforeTax = t.AmountBeforeTax
	q.VAT = t.VAT
	q.NetAmount = t.NetAmount
}
