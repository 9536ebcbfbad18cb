package booking

// Status is the approval state of a booking. WAITING is the only
// non-terminal state: the item's owner resolves it to APPROVED or REJECTED
// exactly once.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Resolve maps the owner's decision to the terminal status.
func Resolve(approved bool) Status {
	if approved {
		return StatusApproved
	}
	return StatusRejected
}
