package registry

import (
	"context"
	"fmt"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	"github.com/mergington/go-activities/pkg/types"
)

// Stable text codes carried by registry errors. The REST layer keys its
// client contract off categories; tests and hook consumers key off these.
const (
	TextCodeActivityNotFound = "ACTIVITY_NOT_FOUND"
	TextCodeAlreadySignedUp  = "ALREADY_SIGNED_UP"
	TextCodeActivityFull     = "ACTIVITY_FULL"
	TextCodeNotRegistered    = "NOT_REGISTERED"
)

// Config wires dependencies for the registry.
type Config struct {
	// Catalog seeds the registry. Defaults to DefaultCatalog when empty.
	Catalog []types.Activity
	Logger  types.Logger
}

// ActivityRegistry is the process-lifetime activity store. Constructed once at
// startup and never torn down; all access goes through the mutex so the
// invariants hold under concurrent requests.
type ActivityRegistry struct {
	mu         sync.RWMutex
	activities map[string]*types.Activity
	logger     types.Logger
}

var _ types.Registry = (*ActivityRegistry)(nil)

// New builds a registry from the supplied catalog. Seed entries are validated
// up front: duplicate names, non-positive capacities, over-capacity or
// duplicated starter rosters are construction errors, not runtime surprises.
func New(cfg Config) (*ActivityRegistry, error) {
	catalog := cfg.Catalog
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = types.NopLogger{}
	}

	activities := make(map[string]*types.Activity, len(catalog))
	for _, seed := range catalog {
		if seed.Name == "" {
			return nil, fmt.Errorf("registry: seed activity with empty name")
		}
		if _, dup := activities[seed.Name]; dup {
			return nil, fmt.Errorf("registry: duplicate seed activity %q", seed.Name)
		}
		if seed.MaxParticipants <= 0 {
			return nil, fmt.Errorf("registry: activity %q needs a positive capacity", seed.Name)
		}
		if len(seed.Participants) > seed.MaxParticipants {
			return nil, fmt.Errorf("registry: activity %q seeded beyond capacity", seed.Name)
		}
		seen := make(map[string]struct{}, len(seed.Participants))
		for _, participant := range seed.Participants {
			if _, dup := seen[participant]; dup {
				return nil, fmt.Errorf("registry: activity %q has duplicate participant %q", seed.Name, participant)
			}
			seen[participant] = struct{}{}
		}
		record := seed.Clone()
		activities[seed.Name] = &record
	}

	return &ActivityRegistry{
		activities: activities,
		logger:     logger,
	}, nil
}

// Snapshot returns a deep copy of the catalog keyed by activity name. Mutating
// the returned map or its rosters never touches registry state.
func (r *ActivityRegistry) Snapshot(_ context.Context) map[string]types.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]types.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out
}

// Enroll appends email to the activity roster. Checks run in contract order:
// activity exists, not already enrolled, capacity available. Email syntax is
// the caller's concern; by the time a registry sees an address it is stored
// verbatim.
func (r *ActivityRegistry) Enroll(_ context.Context, activity, email string) (types.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.activities[activity]
	if !ok {
		return types.Activity{}, errActivityNotFound(activity)
	}
	for _, participant := range record.Participants {
		if participant == email {
			return types.Activity{}, goerrors.New("Student already signed up", goerrors.CategoryValidation).
				WithCode(goerrors.CodeBadRequest).
				WithTextCode(TextCodeAlreadySignedUp)
		}
	}
	if len(record.Participants) >= record.MaxParticipants {
		return types.Activity{}, goerrors.New("Activity is full", goerrors.CategoryValidation).
			WithCode(goerrors.CodeBadRequest).
			WithTextCode(TextCodeActivityFull)
	}

	record.Participants = append(record.Participants, email)
	r.logger.Debug("roster updated", "activity", activity, "size", len(record.Participants))
	return record.Clone(), nil
}

// Withdraw removes exactly one occurrence of email from the activity roster.
func (r *ActivityRegistry) Withdraw(_ context.Context, activity, email string) (types.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.activities[activity]
	if !ok {
		return types.Activity{}, errActivityNotFound(activity)
	}
	for i, participant := range record.Participants {
		if participant == email {
			record.Participants = append(record.Participants[:i], record.Participants[i+1:]...)
			r.logger.Debug("roster updated", "activity", activity, "size", len(record.Participants))
			return record.Clone(), nil
		}
	}
	return types.Activity{}, goerrors.New("Student not registered for this activity", goerrors.CategoryValidation).
		WithCode(goerrors.CodeBadRequest).
		WithTextCode(TextCodeNotRegistered)
}

func errActivityNotFound(activity string) error {
	return goerrors.New("Activity not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound).
		WithTextCode(TextCodeActivityNotFound).
		WithMetadata(map[string]any{"activity": activity})
}
