package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"}, // 3rd decimal is exactly 5 -> up
		{"10.004", "10"},
		{"10.0049", "10"},
		{"10.006", "10.01"},
		{"10.0", "10"},
		{"0.125", "0.13"},
		{"99.994", "99.99"},
		{"99.995", "100"},
		{"0", "0"},
	}
	for _, tc := range cases {
		got := RoundHalfUp(dec(tc.in))
		assert.True(t, got.Equal(dec(tc.want)), "RoundHalfUp(%s) = %s, want %s", tc.in, got, tc.want)
	}
}

func TestCalculateTotals(t *testing.T) {
	items := []domain.QuotationItem{
		{Description: "Media plan", Unit: dec("2"), UnitPrice: dec("1000.50")},
		{Description: "Production", Unit: dec("1"), UnitPrice: dec("500.005")},
	}

	totals := CalculateTotals(items, dec("100"), dec("50"), dec("0.07"))

	require.Len(t, totals.Items, 2)
	// 500.005 rounds up to 500.01 before multiplying.
	assert.True(t, totals.Items[1].UnitPrice.Equal(dec("500.01")))
	assert.True(t, totals.Items[0].Amount.Equal(dec("2001")))
	assert.True(t, totals.Items[1].Amount.Equal(dec("500.01")))

	assert.True(t, totals.TotalBeforeFee.Equal(dec("2501.01")))
	assert.True(t, totals.CalFee.Equal(dec("50")))
	assert.True(t, totals.Total.Equal(dec("2551.01")))
	assert.True(t, totals.AmountBeforeTax.Equal(dec("2451.01")))
	assert.True(t, totals.VAT.Equal(dec("171.57")), "got %s", totals.VAT) // 2451.01*0.07 = 171.5707
	assert.True(t, totals.NetAmount.Equal(dec("2622.58")))
	assert.True(t, totals.Amount.Equal(totals.TotalBeforeFee))
}

func TestCalculateTotalsEmptyItems(t *testing.T) {
	totals := CalculateTotals(nil, decimal.Zero, decimal.Zero, dec("0.07"))
	assert.True(t, totals.Total.Equal(decimal.Zero))
	assert.True(t, totals.NetAmount.Equal(decimal.Zero))
	assert.Empty(t, totals.Items)
}
