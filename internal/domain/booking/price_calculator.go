package booking

type PriceCalculator interface {
	Calculate(hourlyRateCents int64, rng Range) Money
}

// TaxedHourlyCalculator prices a booking as (rate + fixed tax) per inclusive
// hour, rounded up to a whole euro. The rounding matches what riders see on
// the checkout screen: 5.00/h + 0.70 tax over 3 hours is 17.10, billed 18.
type TaxedHourlyCalculator struct {
	TaxCents int64
}

func NewTaxedHourlyCalculator(taxCents int64) *TaxedHourlyCalculator {
	return &TaxedHourlyCalculator{TaxCents: taxCents}
}

func (c *TaxedHourlyCalculator) Calculate(hourlyRateCents int64, rng Range) Money {
	hours := int64(rng.InclusiveHours())
	raw := (hourlyRateCents + c.TaxCents) * hours

	// Round up to the next whole euro.
	euros := raw / 100
	if raw%100 != 0 {
		euros++
	}

	m, _ := NewMoney(euros * 100)
	return m
}
