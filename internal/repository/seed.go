package repository

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Activities []seedActivity `yaml:"activities"`
}

type seedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// SeedActivities decodes the embedded catalog. Document order becomes the
// catalog listing order.
func SeedActivities() ([]domain.Activity, error) {
	var file seedFile
	if err := yaml.Unmarshal(seedYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to decode seed catalog: %w", err)
	}
	if len(file.Activities) == 0 {
		return nil, fmt.Errorf("seed catalog is empty")
	}

	activities := make([]domain.Activity, len(file.Activities))
	for i, a := range file.Activities {
		activities[i] = domain.Activity{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		}
	}
	return activities, nil
}
