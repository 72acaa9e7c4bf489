package command

import (
	"context"
	"strings"

	gocommand "github.com/goliatone/go-command"
	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-masker"
	"github.com/mergington/go-activities/pkg/email"
	"github.com/mergington/go-activities/pkg/types"
)

// EnrollInput captures a signup request.
type EnrollInput struct {
	Activity string
	Email    string
	// Result, when non-nil, receives the updated activity on success.
	Result *types.Activity
}

// Type implements gocommand.Message.
func (EnrollInput) Type() string {
	return "command.activity.enroll"
}

// Validate implements gocommand.Message.
func (input EnrollInput) Validate() error {
	if strings.TrimSpace(input.Activity) == "" {
		return errActivityRequired()
	}
	return nil
}

// EnrollCommandConfig wires dependencies for the enroll command.
type EnrollCommandConfig struct {
	Registry types.Registry
	Gate     featuregate.FeatureGate
	Clock    types.Clock
	IDs      types.IDGenerator
	Hooks    types.Hooks
	Logger   types.Logger
	Masker   *masker.Masker
}

// EnrollCommand signs a student up for an activity. Failure precedence is
// fixed: email format, activity existence, duplicate enrollment, capacity.
// A malformed address against an unknown activity reports the address, not
// the activity.
type EnrollCommand struct {
	registry types.Registry
	gate     featuregate.FeatureGate
	clock    types.Clock
	ids      types.IDGenerator
	hooks    types.Hooks
	logger   types.Logger
	masker   *masker.Masker
}

// NewEnrollCommand constructs the handler.
func NewEnrollCommand(cfg EnrollCommandConfig) *EnrollCommand {
	return &EnrollCommand{
		registry: cfg.Registry,
		gate:     cfg.Gate,
		clock:    safeClock(cfg.Clock),
		ids:      safeIDs(cfg.IDs),
		hooks:    cfg.Hooks,
		logger:   safeLogger(cfg.Logger),
		masker:   cfg.Masker,
	}
}

var _ gocommand.Commander[EnrollInput] = (*EnrollCommand)(nil)

// Execute validates the address, applies the roster mutation, and emits the
// enrollment event.
func (c *EnrollCommand) Execute(ctx context.Context, input EnrollInput) error {
	if c.registry == nil {
		return types.ErrMissingRegistry
	}
	if err := input.Validate(); err != nil {
		return err
	}

	// The activities.email_validation gate selects between the strict and
	// lenient product variants. Strict is the default.
	strict, err := featureEnabled(ctx, c.gate, featureEmailValidation)
	if err != nil {
		return err
	}
	if strict && !email.Valid(input.Email) {
		return errInvalidEmail()
	}

	updated, err := c.registry.Enroll(ctx, input.Activity, input.Email)
	if err != nil {
		return err
	}
	if input.Result != nil {
		*input.Result = updated
	}

	event := types.EnrollmentEvent{
		ID:         c.ids.UUID(),
		Activity:   updated.Name,
		RosterSize: len(updated.Participants),
		OccurredAt: now(c.clock),
		Data:       maskPayload(c.masker, map[string]any{"email": input.Email}),
	}
	c.logger.Info("student enrolled",
		"activity", event.Activity,
		"roster_size", event.RosterSize,
		"spots_left", updated.SpotsLeft(),
	)
	emitEnrollHook(ctx, c.hooks, event)
	return nil
}
