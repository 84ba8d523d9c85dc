package mapper

import (
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/dto"
)

// Activity mappers
func MapDomainActivityToDTO(activity *domain.Activity) dto.ActivityDTO {
	// Rosters serialize as [] rather than null, matching the reference API.
	participants := make([]string, len(activity.Participants))
	copy(participants, activity.Participants)

	return dto.ActivityDTO{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func MapDomainCatalogToDTO(activities []domain.Activity) dto.CatalogDTO {
	catalog := make(dto.CatalogDTO, len(activities))
	for i := range activities {
		catalog[activities[i].Name] = MapDomainActivityToDTO(&activities[i])
	}
	return catalog
}
