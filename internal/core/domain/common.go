package domain

import "time"

// AuditFields contains common audit information embedded in most domain structs.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Currency identifies one of the currencies the back office accepts for entry.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyTRY Currency = "TRY"
)

// IsValid reports whether the currency is one of the accepted entry currencies.
func (c Currency) IsValid() bool {
	return c == CurrencyUSD || c == CurrencyTRY
}
