package ui

// Approval implements session.Confirmer for the terminal. The inline y/n
// prompt resolves before the session asks, so Confirm just replays the
// recorded answer.
type Approval struct {
	granted bool
}

func NewApproval() *Approval {
	return &Approval{}
}

func (a *Approval) Confirm(string) bool {
	return a.granted
}

func (a *Approval) grant(v bool) {
	a.granted = v
}
