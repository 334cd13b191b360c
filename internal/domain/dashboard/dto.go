package dashboard

import "github.com/shopspring/decimal"

// Stats are the per-company dashboard cards.
type Stats struct {
	ActiveEmployees int64           `json:"active_employees"`
	Machines        int64           `json:"machines"`
	RentalAreas     int64           `json:"rental_areas"`
	EarnedThisMonth decimal.Decimal `json:"earned_this_month"`
	PaidThisMonth   decimal.Decimal `json:"paid_this_month"`
}
