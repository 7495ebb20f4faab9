package types

// ApplicationStatus is the lifecycle state of an internship application.
// Pending is the initial state; Accepted and Rejected are terminal.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusAccepted ApplicationStatus = "Accepted"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

// Validate checks that the status is one of the known values.
func (s ApplicationStatus) Validate() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// PositionStatus is the posting state of an internship position.
type PositionStatus string

const (
	PositionStatusActive   PositionStatus = "Active"
	PositionStatusInactive PositionStatus = "Inactive"
)

func (s PositionStatus) Validate() bool {
	return s == PositionStatusActive || s == PositionStatusInactive
}
