package listing

type Status string

const (
	StatusAvailable Status = "Available"
	// StatusDonated is lowercase on the wire, unlike StatusAvailable.
	StatusDonated Status = "donated"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusDonated:
		return true
	default:
		return false
	}
}
