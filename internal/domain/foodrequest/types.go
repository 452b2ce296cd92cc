package foodrequest

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

func (s Status) String() string {
	return string(s)
}
