package domain

import "github.com/shopspring/decimal"

// PropertyStatus indicates whether a property is currently listed.
type PropertyStatus string

const (
	PropertyActive   PropertyStatus = "active"
	PropertyInactive PropertyStatus = "inactive"
)

// Property represents a managed rental property. NightlyRate is always the
// USD-normalized rate; OriginalRate/OriginalCurrency preserve the entry form.
type Property struct {
	PropertyID       string           `json:"propertyID"`
	Name             string           `json:"name"`
	Address          string           `json:"address"`
	UnitCount        int              `json:"unitCount"`
	NightlyRate      decimal.Decimal  `json:"nightlyRate"`
	OriginalRate     *decimal.Decimal `json:"originalRate,omitempty"`
	OriginalCurrency Currency         `json:"originalCurrency,omitempty"`
	Rating           float64          `json:"rating"`
	Status           PropertyStatus   `json:"status"`
	AssignedTo       string           `json:"assignedTo"` // owning user id (row filter)
	AuditFields
}
