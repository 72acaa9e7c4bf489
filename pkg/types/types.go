package types

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Activity is a single extracurricular offering. Participants keeps signup
// order: new enrollments are appended, never reordered.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a copy of the activity with the roster slice detached so
// callers can mutate safely.
func (a Activity) Clone() Activity {
	clone := a
	clone.Participants = append([]string(nil), a.Participants...)
	return clone
}

// SpotsLeft reports the remaining capacity.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Registry is the DI contract for the activity catalog. Snapshot returns a
// read-only deep copy; Enroll and Withdraw are the only mutating paths and
// enforce the capacity and no-duplicate invariants.
type Registry interface {
	Snapshot(ctx context.Context) map[string]Activity
	Enroll(ctx context.Context, activity, email string) (Activity, error)
	Withdraw(ctx context.Context, activity, email string) (Activity, error)
}

// EnrollmentEvent is emitted after a successful enrollment. Data carries the
// masked payload; raw student emails never leave the command layer through
// events.
type EnrollmentEvent struct {
	ID         uuid.UUID
	Activity   string
	RosterSize int
	OccurredAt time.Time
	Data       map[string]any
}

// WithdrawalEvent is emitted after a successful withdrawal.
type WithdrawalEvent struct {
	ID         uuid.UUID
	Activity   string
	RosterSize int
	OccurredAt time.Time
	Data       map[string]any
}

// Hooks groups optional callbacks invoked after mutations complete.
type Hooks struct {
	AfterEnroll   func(context.Context, EnrollmentEvent)
	AfterWithdraw func(context.Context, WithdrawalEvent)
}

// Clock abstracts time retrieval for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// IDGenerator abstracts UUID creation.
type IDGenerator interface {
	UUID() uuid.UUID
}

// UUIDGenerator is the default IDGenerator.
type UUIDGenerator struct{}

func (UUIDGenerator) UUID() uuid.UUID {
	return uuid.New()
}

// Logger is the minimal logging contract accepted by the library. Hosts adapt
// their logger of choice; the zero-dependency default is NopLogger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, err error, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any)        {}
func (NopLogger) Info(string, ...any)         {}
func (NopLogger) Warn(string, ...any)         {}
func (NopLogger) Error(string, error, ...any) {}
