package command

import (
	"context"
	"strings"

	gocommand "github.com/goliatone/go-command"
	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-masker"
	"github.com/mergington/go-activities/pkg/types"
)

// WithdrawInput captures an unregister request. Email is matched against the
// stored roster string verbatim; no format validation applies on this path.
type WithdrawInput struct {
	Activity string
	Email    string
	// Result, when non-nil, receives the updated activity on success.
	Result *types.Activity
}

// Type implements gocommand.Message.
func (WithdrawInput) Type() string {
	return "command.activity.withdraw"
}

// Validate implements gocommand.Message.
func (input WithdrawInput) Validate() error {
	if strings.TrimSpace(input.Activity) == "" {
		return errActivityRequired()
	}
	if input.Email == "" {
		return errEmailRequired()
	}
	return nil
}

// WithdrawCommandConfig wires dependencies for the withdraw command.
type WithdrawCommandConfig struct {
	Registry types.Registry
	Gate     featuregate.FeatureGate
	Clock    types.Clock
	IDs      types.IDGenerator
	Hooks    types.Hooks
	Logger   types.Logger
	Masker   *masker.Masker
}

// WithdrawCommand removes a student from an activity roster.
type WithdrawCommand struct {
	registry types.Registry
	gate     featuregate.FeatureGate
	clock    types.Clock
	ids      types.IDGenerator
	hooks    types.Hooks
	logger   types.Logger
	masker   *masker.Masker
}

// NewWithdrawCommand constructs the handler.
func NewWithdrawCommand(cfg WithdrawCommandConfig) *WithdrawCommand {
	return &WithdrawCommand{
		registry: cfg.Registry,
		gate:     cfg.Gate,
		clock:    safeClock(cfg.Clock),
		ids:      safeIDs(cfg.IDs),
		hooks:    cfg.Hooks,
		logger:   safeLogger(cfg.Logger),
		masker:   cfg.Masker,
	}
}

var _ gocommand.Commander[WithdrawInput] = (*WithdrawCommand)(nil)

// Execute removes exactly one roster occurrence and emits the withdrawal
// event. The whole operation sits behind the activities.unregister gate.
func (c *WithdrawCommand) Execute(ctx context.Context, input WithdrawInput) error {
	if c.registry == nil {
		return types.ErrMissingRegistry
	}

	enabled, err := featureEnabled(ctx, c.gate, featureUnregister)
	if err != nil {
		return err
	}
	if !enabled {
		return errUnregisterDisabled()
	}

	if err := input.Validate(); err != nil {
		return err
	}

	updated, err := c.registry.Withdraw(ctx, input.Activity, input.Email)
	if err != nil {
		return err
	}
	if input.Result != nil {
		*input.Result = updated
	}

	event := types.WithdrawalEvent{
		ID:         c.ids.UUID(),
		Activity:   updated.Name,
		RosterSize: len(updated.Participants),
		OccurredAt: now(c.clock),
		Data:       maskPayload(c.masker, map[string]any{"email": input.Email}),
	}
	c.logger.Info("student withdrawn",
		"activity", event.Activity,
		"roster_size", event.RosterSize,
	)
	emitWithdrawHook(ctx, c.hooks, event)
	return nil
}
