package domain

// Activity is a single extracurricular offering. The name is the catalog key
// and is not repeated inside the struct on the wire.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// IsSignedUp reports whether email is already on the roster. A linear scan is
// fine here, rosters stay in the tens at most.
func (a *Activity) IsSignedUp(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
