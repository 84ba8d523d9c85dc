package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/my_errors"
)

// CatalogRepository keeps the activity catalog in memory. The catalog key set
// is fixed for the process lifetime; only participant rosters mutate. All
// access goes through the RWMutex because the HTTP server handles requests
// concurrently.
type CatalogRepository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
	order      []string
}

func NewCatalogRepository(seed []domain.Activity) *CatalogRepository {
	r := &CatalogRepository{
		activities: make(map[string]*domain.Activity, len(seed)),
		order:      make([]string, 0, len(seed)),
	}
	for i := range seed {
		activity := seed[i]
		if activity.Participants == nil {
			activity.Participants = []string{}
		}
		r.activities[activity.Name] = &activity
		r.order = append(r.order, activity.Name)
	}
	return r
}

// GetAllActivities returns a snapshot of the catalog in seed order.
func (r *CatalogRepository) GetAllActivities(ctx context.Context) ([]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activities := make([]domain.Activity, 0, len(r.order))
	for _, name := range r.order {
		activities = append(activities, r.snapshot(r.activities[name]))
	}
	return activities, nil
}

// GetActivity returns a snapshot of one activity.
func (r *CatalogRepository) GetActivity(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, fmt.Errorf("%w", my_errors.ErrActivityNotFound)
	}
	snap := r.snapshot(activity)
	return &snap, nil
}

// AddParticipant appends email to the roster. Lookup, duplicate check and
// append happen under one lock so concurrent signups cannot lose updates.
func (r *CatalogRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return fmt.Errorf("%w", my_errors.ErrActivityNotFound)
	}
	if activity.IsSignedUp(email) {
		return fmt.Errorf("%w", my_errors.ErrAlreadySignedUp)
	}

	activity.Participants = append(activity.Participants, email)
	return nil
}

// RemoveParticipant removes email from the roster, preserving the order of
// the remaining entries.
func (r *CatalogRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return fmt.Errorf("%w", my_errors.ErrActivityNotFound)
	}

	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w", my_errors.ErrNotSignedUp)
}

// snapshot copies an activity so callers never alias the roster slice held
// under the lock. Callers must hold at least the read lock.
func (r *CatalogRepository) snapshot(activity *domain.Activity) domain.Activity {
	snap := *activity
	snap.Participants = make([]string, len(activity.Participants))
	copy(snap.Participants, activity.Participants)
	return snap
}
