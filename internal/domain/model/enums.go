package model

// CloseReason is the state reason recorded on an issue when it is closed.
// The empty value lets GitHub pick its default.
type CloseReason string

const (
	CloseReasonDefault    CloseReason = ""
	CloseReasonCompleted  CloseReason = "completed"
	CloseReasonNotPlanned CloseReason = "not_planned"
)

// Valid reports whether the reason is one of the accepted literals.
func (r CloseReason) Valid() bool {
	switch r {
	case CloseReasonDefault, CloseReasonCompleted, CloseReasonNotPlanned:
		return true
	}
	return false
}
