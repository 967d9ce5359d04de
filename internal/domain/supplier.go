package domain

// PricingSettings are the supplier-level settings that affect quotes and search
type PricingSettings struct {
	PriceChangeRate   float64 `json:"priceChangeRate"`
	MinimumRentalDays *int    `json:"minimumRentalDays"`
}

// Pricing returns the pricing settings of the supplier
func (s *Supplier) Pricing() PricingSettings {
	return PricingSettings{
		PriceChangeRate:   s.PriceChangeRate,
		MinimumRentalDays: s.MinimumRentalDays,
	}
}
