package domain

// LeadStatus is the sales pipeline stage of a lead.
type LeadStatus string

const (
	LeadNew         LeadStatus = "new"
	LeadContacted   LeadStatus = "contacted"
	LeadQualified   LeadStatus = "qualified"
	LeadProposal    LeadStatus = "proposal"
	LeadNegotiation LeadStatus = "negotiation"
	LeadClosed      LeadStatus = "closed"
	LeadLost        LeadStatus = "lost"
)

// IsValid reports whether the status is a known pipeline stage.
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadProposal, LeadNegotiation, LeadClosed, LeadLost:
		return true
	}
	return false
}

// Lead is a prospective guest or client tracked through the pipeline.
type Lead struct {
	LeadID     string     `json:"leadID"`
	UserID     string     `json:"userID"` // owning user (row filter)
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	Status     LeadStatus `json:"status"`
	Source     string     `json:"source,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	AssignedTo *string    `json:"assignedTo,omitempty"`
	PropertyID *string    `json:"propertyID,omitempty"`
	AuditFields
}
