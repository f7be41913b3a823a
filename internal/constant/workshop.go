package constant

// WorkshopStatus values are persisted as integers. Dashboards and mail
// templates rely on the literal 0/1/2 codes, so the mapping must not change.
type WorkshopStatus int

const (
	WorkshopStatusPending WorkshopStatus = iota
	WorkshopStatusAccepted
	WorkshopStatusDeleted
)

var workshopStatusLabels = map[WorkshopStatus]string{
	WorkshopStatusPending:  "Pending",
	WorkshopStatusAccepted: "Accepted",
	WorkshopStatusDeleted:  "Deleted",
}

func (s WorkshopStatus) Label() string {
	label, ok := workshopStatusLabels[s]
	if !ok {
		return "Unknown"
	}
	return label
}

func (s WorkshopStatus) Valid() bool {
	_, ok := workshopStatusLabels[s]
	return ok
}

// CanTransition reports whether an admin may move a workshop from one status
// to another. Same-state writes are allowed so a repeated admin action stays
// a no-op; reverse transitions (for example Deleted back to Pending) are not.
func CanTransition(from, to WorkshopStatus) bool {
	if from == to {
		return true
	}

	switch from {
	case WorkshopStatusPending:
		return to == WorkshopStatusAccepted || to == WorkshopStatusDeleted
	case WorkshopStatusAccepted:
		return to == WorkshopStatusDeleted
	default:
		return false
	}
}

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)
