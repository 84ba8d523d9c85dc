package service

import (
	"context"

	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/domain"
)

type CatalogRepository interface {
	GetAllActivities(ctx context.Context) ([]domain.Activity, error)
	GetActivity(ctx context.Context, name string) (*domain.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}
