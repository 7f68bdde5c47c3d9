package domain

// Pricing constants. Prices are per unit of activity, in base units.
var (
	DefaultCostPerClick      = Milli(50)
	DefaultCostPerImpression = Milli(5)
	MinCostPerClick          = Milli(10)
	MinCostPerImpression     = Milli(1)
	MaxCostPerClick          = Tokens(1)
	MaxCostPerImpression     = Milli(100)
)

const (
	// CPCCoefficient and CPICoefficient parametrise the decay step. For any
	// coefficient of 4 or more the divisor coefficient/(coefficient/2) is 2,
	// so neither value changes the curve.
	CPCCoefficient = 100
	CPICoefficient = 1000

	// priceDecayBase scales the per-step decrease: each step removes
	// 1/priceDecayBase of the default price.
	priceDecayBase = 10_000
)

// Price returns the volume adjusted unit price. Every division floors. The
// result never exceeds def and never falls below floor; a volume of zero
// yields def whenever def is above floor.
func Price(def, floor Amount, volume uint64, coefficient uint64) Amount {
	divisor := uint64(1)
	if half := coefficient / 2; half > 0 {
		divisor = coefficient / half
	}
	step := volume / divisor

	decrease := divU(mulU(def, step), priceDecayBase)
	if decrease.Cmp(&def) >= 0 {
		return floor
	}
	candidate := sub(def, decrease)
	if candidate.IsZero() || candidate.Cmp(&floor) <= 0 {
		return floor
	}
	return candidate
}

// Owed is what a provider with the given activity has earned in total under
// the supplied prices.
func Owed(s Settings, clicks, impressions uint64) Amount {
	cpc := Price(s.CostPerClick, MinCostPerClick, clicks, CPCCoefficient)
	cpi := Price(s.CostPerImpression, MinCostPerImpression, impressions, CPICoefficient)
	return add(mulU(cpc, clicks), mulU(cpi, impressions))
}
