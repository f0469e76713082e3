package entity

import "time"

const (
	StatusContacted   = "Contacted"
	StatusSubmitted   = "Submitted"
	StatusLost        = "Lost"
	StatusNotEligible = "Not eligible"
)

func IsLeadStatus(value string) bool {
	switch value {
	case StatusContacted, StatusSubmitted, StatusLost, StatusNotEligible:
		return true
	}
	return false
}

// LeadStatus is the owning broker's working annotation on a purchased lead.
type LeadStatus struct {
	LeadID    string    `json:"lead_id"`
	BrokerID  string    `json:"broker_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}
