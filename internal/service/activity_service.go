package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/my_errors"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/observability"
)

type ActivityService struct {
	catalogRepo CatalogRepository
}

func NewActivityService(catalogRepo CatalogRepository) *ActivityService {
	return &ActivityService{
		catalogRepo: catalogRepo,
	}
}

// ListActivities returns the full catalog in listing order.
func (s *ActivityService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.catalogRepo.GetAllActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// Signup registers email for the named activity and returns the confirmation
// message. Capacity (max_participants) is intentionally not enforced; the
// reference behavior treats it as advisory.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	if activityName == "" {
		return "", fmt.Errorf("activity name: %w", my_errors.ErrEmptyField)
	}
	if email == "" {
		return "", fmt.Errorf("email: %w", my_errors.ErrEmptyField)
	}

	if err := s.catalogRepo.AddParticipant(ctx, activityName, email); err != nil {
		switch {
		case errors.Is(err, my_errors.ErrActivityNotFound):
			observability.RecordRejection("signup", "activity_not_found")
		case errors.Is(err, my_errors.ErrAlreadySignedUp):
			observability.RecordRejection("signup", "already_signed_up")
		}
		return "", err
	}

	observability.RecordSignup()
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the named activity's roster.
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if activityName == "" {
		return "", fmt.Errorf("activity name: %w", my_errors.ErrEmptyField)
	}
	if email == "" {
		return "", fmt.Errorf("email: %w", my_errors.ErrEmptyField)
	}

	if err := s.catalogRepo.RemoveParticipant(ctx, activityName, email); err != nil {
		switch {
		case errors.Is(err, my_errors.ErrActivityNotFound):
			observability.RecordRejection("unregister", "activity_not_found")
		case errors.Is(err, my_errors.ErrNotSignedUp):
			observability.RecordRejection("unregister", "not_signed_up")
		}
		return "", err
	}

	observability.RecordUnregistration()
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
