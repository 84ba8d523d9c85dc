package dto

// ActivityDTO is the wire shape of a single activity. The activity name is
// the key of the enclosing catalog object, so it is not duplicated here.
type ActivityDTO struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// CatalogDTO maps activity name to its attributes, exactly as served by
// GET /activities.
type CatalogDTO map[string]ActivityDTO
