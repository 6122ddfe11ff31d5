package models

// Status classifies where an application currently stands.
type Status string

const (
	StatusApplied            Status = "Applied"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusInterviewCompleted Status = "Interview Completed"
	StatusOfferReceived      Status = "Offer Received"
	StatusRejected           Status = "Rejected"
	StatusWithdrawn          Status = "Withdrawn"
)

// Portal names the job board an application went through. The set is open:
// values outside KnownPortals are stored as-is.
type Portal string

const (
	PortalLinkedIn  Portal = "LinkedIn"
	PortalIndeed    Portal = "Indeed"
	PortalNaukri    Portal = "Naukri"
	PortalMonster   Portal = "Monster"
	PortalGlassdoor Portal = "Glassdoor"
	PortalAngelList Portal = "AngelList"
	PortalOther     Portal = "Other"
)

// KnownStatuses lists the statuses in display order.
func KnownStatuses() []Status {
	return []Status{
		StatusApplied,
		StatusInterviewScheduled,
		StatusInterviewCompleted,
		StatusOfferReceived,
		StatusRejected,
		StatusWithdrawn,
	}
}

// KnownPortals lists the portals in display order.
func KnownPortals() []Portal {
	return []Portal{
		PortalLinkedIn,
		PortalIndeed,
		PortalNaukri,
		PortalMonster,
		PortalGlassdoor,
		PortalAngelList,
		PortalOther,
	}
}

// ApplicationRecord is one tracked job application. ID and OwnerID are set by
// the repository at creation time and never change afterwards.
//
// Company, Position, Portal, Status, and DateApplied are required; the rest
// are optional.
type ApplicationRecord struct {
	ID          int64  `json:"id"`
	OwnerID     string `json:"userId"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Portal      Portal `json:"portal"`
	Status      Status `json:"status"`
	DateApplied string `json:"dateApplied"`
	Salary      string `json:"salary,omitempty"`
	Location    string `json:"location,omitempty"`
	JobURL      string `json:"jobUrl,omitempty"`
	CompanyLogo string `json:"companyLogo,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
